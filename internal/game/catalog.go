package game

// DefaultBudgetScenarios is the built-in scenario catalog. A session draws
// all twelve in shuffled order.
var DefaultBudgetScenarios = []BudgetScenario{
	{
		Title:       "Rent is Due!",
		Description: "Your monthly rent payment is due. This is a fixed expense.",
		Choices: []BudgetChoice{
			{Text: "Pay full rent on time", Cost: 1500, Impact: 0, Best: true},
			{Text: "Pay late (add $50 fee)", Cost: 1550, Impact: -50},
			{Text: "Move to cheaper place (moving costs)", Cost: 2000, Impact: 200},
		},
	},
	{
		Title:       "Dinner Plans",
		Description: "Friends invited you out for dinner. What do you do?",
		Choices: []BudgetChoice{
			{Text: "Expensive restaurant", Cost: 80, Impact: -20},
			{Text: "Moderate restaurant", Cost: 35, Impact: 0},
			{Text: "Cook at home & invite friends", Cost: 15, Impact: 20, Best: true},
		},
	},
	{
		Title:       "Car Trouble",
		Description: "Your car needs unexpected repairs.",
		Choices: []BudgetChoice{
			{Text: "Fix at dealership (warranty)", Cost: 500, Impact: 0},
			{Text: "Local mechanic (good reviews)", Cost: 250, Impact: 50, Best: true},
			{Text: "Ignore it for now", Cost: 0, Impact: -200},
		},
	},
	{
		Title:       "Phone Upgrade",
		Description: "Your phone carrier is offering new phones.",
		Choices: []BudgetChoice{
			{Text: "Latest flagship phone", Cost: 1200, Impact: -50},
			{Text: "Mid-range phone", Cost: 400, Impact: 0},
			{Text: "Keep current phone", Cost: 0, Impact: 30, Best: true},
		},
	},
	{
		Title:       "Grocery Shopping",
		Description: "Time for weekly grocery shopping.",
		Choices: []BudgetChoice{
			{Text: "Organic premium store", Cost: 200, Impact: -20},
			{Text: "Regular supermarket with list", Cost: 100, Impact: 20, Best: true},
			{Text: "Fast food all week", Cost: 150, Impact: -40},
		},
	},
	{
		Title:       "Utility Bill",
		Description: "Electricity bill arrived. Higher than expected!",
		Choices: []BudgetChoice{
			{Text: "Pay and forget about it", Cost: 180, Impact: -10},
			{Text: "Pay and switch to LED bulbs", Cost: 200, Impact: 30, Best: true},
			{Text: "Dispute the bill (may add fees)", Cost: 200, Impact: -20},
		},
	},
	{
		Title:       "Birthday Gift",
		Description: "Your best friend's birthday is coming up.",
		Choices: []BudgetChoice{
			{Text: "Expensive designer gift", Cost: 300, Impact: -30},
			{Text: "Thoughtful handmade gift", Cost: 25, Impact: 25, Best: true},
			{Text: "Gift card", Cost: 50, Impact: 0},
		},
	},
	{
		Title:       "Fitness Goals",
		Description: "You want to get in shape. What's your plan?",
		Choices: []BudgetChoice{
			{Text: "Premium gym membership", Cost: 100, Impact: -20},
			{Text: "Budget gym + home workouts", Cost: 30, Impact: 15, Best: true},
			{Text: "Buy expensive home equipment", Cost: 800, Impact: -50},
		},
	},
	{
		Title:       "Daily Coffee",
		Description: "Your morning coffee routine needs deciding.",
		Choices: []BudgetChoice{
			{Text: "Fancy coffee shop daily", Cost: 150, Impact: -40},
			{Text: "Brew at home", Cost: 20, Impact: 30, Best: true},
			{Text: "Mix: home + occasional treat", Cost: 50, Impact: 10},
		},
	},
	{
		Title:       "Entertainment",
		Description: "Time to review your streaming subscriptions.",
		Choices: []BudgetChoice{
			{Text: "Keep all 5 services", Cost: 75, Impact: -20},
			{Text: "Cancel unused, keep 2", Cost: 25, Impact: 25, Best: true},
			{Text: "Cancel all, free alternatives", Cost: 0, Impact: 15},
		},
	},
	{
		Title:       "Transportation",
		Description: "How will you get to work this month?",
		Choices: []BudgetChoice{
			{Text: "Drive alone (gas + parking)", Cost: 300, Impact: -20},
			{Text: "Carpool with coworker", Cost: 100, Impact: 20, Best: true},
			{Text: "Uber/Lyft daily", Cost: 450, Impact: -50},
		},
	},
	{
		Title:       "Work Clothes",
		Description: "You need new clothes for an important meeting.",
		Choices: []BudgetChoice{
			{Text: "Designer brand store", Cost: 400, Impact: -30},
			{Text: "Thrift store + tailor", Cost: 60, Impact: 30, Best: true},
			{Text: "Online fast fashion", Cost: 80, Impact: 0},
		},
	},
}

// DefaultQuizQuestions is the built-in trivia catalog. A session draws ten
// of these without replacement.
var DefaultQuizQuestions = []Question{
	{
		Question:    "What does 'APR' stand for in finance?",
		Options:     []string{"Annual Percentage Rate", "Average Price Return", "Annual Payment Required", "Approved Purchase Rate"},
		Correct:     0,
		Explanation: "APR is the Annual Percentage Rate - the yearly interest rate charged on borrowed money.",
	},
	{
		Question:    "What is the '50/30/20' budget rule?",
		Options:     []string{"50% taxes, 30% savings, 20% spending", "50% needs, 30% wants, 20% savings", "50% savings, 30% needs, 20% wants", "50% rent, 30% food, 20% other"},
		Correct:     1,
		Explanation: "The 50/30/20 rule suggests allocating 50% to needs, 30% to wants, and 20% to savings.",
	},
	{
		Question:    "What is compound interest?",
		Options:     []string{"Interest on principal only", "Interest on interest + principal", "A type of bank fee", "Government tax on savings"},
		Correct:     1,
		Explanation: "Compound interest is interest calculated on both the principal and accumulated interest.",
	},
	{
		Question:    "What is a 401(k)?",
		Options:     []string{"A type of mortgage", "Retirement savings plan", "Tax form number", "Credit score category"},
		Correct:     1,
		Explanation: "A 401(k) is an employer-sponsored retirement savings plan with tax advantages.",
	},
	{
		Question:    "What does 'diversification' mean in investing?",
		Options:     []string{"Buying one good stock", "Spreading investments across different assets", "Investing in foreign currency only", "Timing the market"},
		Correct:     1,
		Explanation: "Diversification means spreading investments to reduce risk.",
	},
	{
		Question:    "What is a credit score primarily used for?",
		Options:     []string{"Determining your salary", "Measuring your wealth", "Assessing creditworthiness", "Calculating taxes"},
		Correct:     2,
		Explanation: "Credit scores help lenders assess your ability to repay borrowed money.",
	},
	{
		Question:    "What is an emergency fund?",
		Options:     []string{"Government bailout", "Savings for unexpected expenses", "Credit card limit", "Insurance policy"},
		Correct:     1,
		Explanation: "An emergency fund is savings set aside for unexpected financial needs.",
	},
	{
		Question:    "What is the 'Rule of 72' used for?",
		Options:     []string{"Calculating tax returns", "Estimating investment doubling time", "Determining retirement age", "Setting budget limits"},
		Correct:     1,
		Explanation: "The Rule of 72 estimates how long it takes for an investment to double.",
	},
	{
		Question:    "What is inflation?",
		Options:     []string{"Increase in stock prices", "Decrease in purchasing power over time", "Bank interest rate", "Government spending"},
		Correct:     1,
		Explanation: "Inflation is the rate at which prices rise and purchasing power falls.",
	},
	{
		Question:    "What is a mutual fund?",
		Options:     []string{"Loan between friends", "Pool of investments from multiple investors", "Government bond", "Bank savings account"},
		Correct:     1,
		Explanation: "A mutual fund pools money from many investors to invest in various securities.",
	},
	{
		Question:    "What is net worth?",
		Options:     []string{"Annual salary", "Assets minus liabilities", "Credit limit", "Monthly income"},
		Correct:     1,
		Explanation: "Net worth is the difference between what you own (assets) and what you owe (liabilities).",
	},
	{
		Question:    "What is a bear market?",
		Options:     []string{"Market with high growth", "Market decline of 20% or more", "New trading platform", "European stock exchange"},
		Correct:     1,
		Explanation: "A bear market is characterized by falling prices, typically 20% or more from recent highs.",
	},
	{
		Question:    "What is liquidity?",
		Options:     []string{"Bank account balance", "Ease of converting assets to cash", "Type of investment", "Interest rate"},
		Correct:     1,
		Explanation: "Liquidity refers to how quickly and easily an asset can be converted to cash.",
	},
	{
		Question:    "What is a dividend?",
		Options:     []string{"Company debt", "Profit distributed to shareholders", "Tax payment", "Stock price"},
		Correct:     1,
		Explanation: "Dividends are portions of company profits distributed to shareholders.",
	},
	{
		Question:    "What is dollar-cost averaging?",
		Options:     []string{"Exchanging currency", "Investing fixed amounts regularly", "Averaging stock prices", "Calculating returns"},
		Correct:     1,
		Explanation: "Dollar-cost averaging means investing a fixed amount regularly regardless of price.",
	},
}
