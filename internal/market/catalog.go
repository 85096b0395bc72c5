package market

import "github.com/shopspring/decimal"

// Session defaults. A new simulator runs 20 trading days with 10000 in cash
// unless the config overrides them.
const DefaultTotalDays = 20

// DefaultInitialCash is the starting cash balance of a session.
var DefaultInitialCash = decimal.NewFromInt(10000)

// DefaultSecurities is the built-in five-security catalog.
var DefaultSecurities = []SecuritySpec{
	{Symbol: "TECH", Name: "TechCorp", BasePrice: 150, Volatility: 0.08},
	{Symbol: "BANK", Name: "BankPlus", BasePrice: 45, Volatility: 0.04},
	{Symbol: "HEALTH", Name: "HealthCo", BasePrice: 80, Volatility: 0.06},
	{Symbol: "ENERGY", Name: "EnergyX", BasePrice: 60, Volatility: 0.10},
	{Symbol: "RETAIL", Name: "ShopMart", BasePrice: 35, Volatility: 0.05},
}

// DefaultNews is the built-in shock catalog. The neutral ALL entry keeps
// no-news days in the draw.
var DefaultNews = []NewsEvent{
	{Kind: "positive", Symbol: "TECH", Headline: "Tech breakthrough announced!", Impact: 0.15},
	{Kind: "negative", Symbol: "TECH", Headline: "Tech regulation concerns", Impact: -0.10},
	{Kind: "positive", Symbol: "BANK", Headline: "Interest rates rising", Impact: 0.08},
	{Kind: "negative", Symbol: "BANK", Headline: "Bank loan defaults increase", Impact: -0.12},
	{Kind: "positive", Symbol: "HEALTH", Headline: "New drug FDA approved!", Impact: 0.20},
	{Kind: "negative", Symbol: "HEALTH", Headline: "Healthcare policy changes", Impact: -0.08},
	{Kind: "positive", Symbol: "ENERGY", Headline: "Oil prices surge globally", Impact: 0.12},
	{Kind: "negative", Symbol: "ENERGY", Headline: "Green energy push hurts oil", Impact: -0.15},
	{Kind: "positive", Symbol: "RETAIL", Headline: "Holiday sales break records", Impact: 0.10},
	{Kind: "negative", Symbol: "RETAIL", Headline: "Supply chain issues persist", Impact: -0.07},
	{Kind: "neutral", Symbol: AllSymbols, Headline: "Market trading sideways today", Impact: 0},
}
