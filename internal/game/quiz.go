package game

import "github.com/finlab/finance-engine/internal/rng"

// Quiz constants. Each question runs a 15-tick countdown; a correct answer
// is worth a base 10 plus a streak bonus plus a speed bonus.
const (
	quizQuestions    = 10
	quizCountdown    = 15
	quizBasePoints   = 10
	quizStreakBonus  = 2
	quizSpeedDivisor = 3
)

// Question is one trivia entry. Correct is the index into Options.
type Question struct {
	Question    string   `json:"question" yaml:"question"`
	Options     []string `json:"options" yaml:"options"`
	Correct     int      `json:"correct" yaml:"correct"`
	Explanation string   `json:"explanation" yaml:"explanation"`
}

// QuestionView is the render-facing question with the answer withheld.
type QuestionView struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Quiz is the timed trivia session. Ticks come from the owning service; the
// session itself only counts them down and forces a timeout choice at zero.
type Quiz struct {
	idx        int
	score      int64
	streak     int64
	bestStreak int64
	timeLeft   int
	queue      []Question
}

// NewQuiz draws 10 questions without replacement from a shuffled catalog.
func NewQuiz(catalog []Question, rnd rng.Source) *Quiz {
	queue := make([]Question, len(catalog))
	copy(queue, catalog)
	rnd.Shuffle(len(queue), func(i, j int) { queue[i], queue[j] = queue[j], queue[i] })
	if len(queue) > quizQuestions {
		queue = queue[:quizQuestions]
	}
	return &Quiz{queue: queue, timeLeft: quizCountdown}
}

func (q *Quiz) Kind() Kind { return KindQuiz }

func (q *Quiz) Ended() bool { return q.idx >= len(q.queue) }

// Current returns the active question, or nil once ended.
func (q *Quiz) Current() *Question {
	if q.Ended() {
		return nil
	}
	return &q.queue[q.idx]
}

// Choose grades answer index against the current question and advances.
// TimeoutChoice (or any wrong index) resets the streak to zero; the score
// itself never decreases.
func (q *Quiz) Choose(index int) (*Outcome, error) {
	if q.Ended() {
		return nil, ErrSessionEnded
	}

	question := q.queue[q.idx]
	out := &Outcome{
		TimedOut: index == TimeoutChoice,
		Message:  question.Explanation,
	}

	if index == question.Correct {
		points := int64(quizBasePoints) + quizStreakBonus*q.streak + int64(q.timeLeft/quizSpeedDivisor)
		q.score += points
		q.streak++
		if q.streak > q.bestStreak {
			q.bestStreak = q.streak
		}
		out.Correct = true
		out.Points = points
	} else {
		q.streak = 0
	}

	q.idx++
	q.timeLeft = quizCountdown
	return out, nil
}

// Tick counts the question timer down one second. At zero it submits a
// forced timeout choice and reports it in the outcome.
func (q *Quiz) Tick() (*Outcome, error) {
	if q.Ended() {
		return nil, ErrSessionEnded
	}
	q.timeLeft--
	if q.timeLeft > 0 {
		return &Outcome{}, nil
	}
	q.timeLeft = 0
	return q.Choose(TimeoutChoice)
}

// Score is the accumulated quiz score.
func (q *Quiz) Score() int64 { return q.score }

// BestStreak is the longest run of consecutive correct answers.
func (q *Quiz) BestStreak() int64 { return q.bestStreak }

func (q *Quiz) Snapshot() *Snapshot {
	var view *QuestionView
	if cur := q.Current(); cur != nil {
		view = &QuestionView{Question: cur.Question, Options: cur.Options}
	}
	return &Snapshot{
		Kind:       KindQuiz,
		Turn:       q.idx,
		TotalTurns: len(q.queue),
		Score:      q.score,
		Streak:     q.streak,
		TimeLeft:   q.timeLeft,
		Question:   view,
		Ended:      q.Ended(),
	}
}
