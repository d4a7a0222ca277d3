package views

import (
	"github.com/abhisek/learnpath/internal/session"
)

// OptionClass is how a review option is marked.
type OptionClass int

const (
	Neutral OptionClass = iota
	CorrectChosen
	IncorrectChosen
	CorrectNotChosen
)

// Style names the visual treatment of a class.
type Style int

const (
	StyleNeutral Style = iota
	StyleCorrect
	StyleIncorrect
)

// Style returns the visual treatment of c.
func (c OptionClass) Style() Style {
	switch c {
	case CorrectChosen, CorrectNotChosen:
		return StyleCorrect
	case IncorrectChosen:
		return StyleIncorrect
	}
	return StyleNeutral
}

func (c OptionClass) String() string {
	switch c {
	case CorrectChosen:
		return "correct-chosen"
	case IncorrectChosen:
		return "incorrect-chosen"
	case CorrectNotChosen:
		return "correct-not-chosen"
	}
	return "neutral"
}

// ReviewOption is one option of a reviewed question.
type ReviewOption struct {
	ID    string
	Text  string
	Class OptionClass
}

// ReviewCard is one reviewed question.
type ReviewCard struct {
	Number      int
	Question    string
	Correct     bool
	Options     []ReviewOption
	Explanation string
}

// Classify marks one option of a reviewed question. A chosen option follows
// the item's verdict; an unchosen option is correct only when it is the
// question's recorded answer.
func Classify(optionID, correctAnswer string, item session.ReviewItem) OptionClass {
	chosen := item.UserAnswer != nil && *item.UserAnswer == optionID
	switch {
	case chosen && item.Correct:
		return CorrectChosen
	case chosen:
		return IncorrectChosen
	case optionID == correctAnswer:
		return CorrectNotChosen
	}
	return Neutral
}

// BuildReview pairs review items with their questions. Items whose question
// cannot be found are skipped.
func BuildReview(questions []session.Question, items []session.ReviewItem) []ReviewCard {
	byID := make(map[session.QuestionID]session.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	cards := make([]ReviewCard, 0, len(items))
	for _, item := range items {
		q, ok := byID[item.QuestionID]
		if !ok {
			continue
		}
		card := ReviewCard{
			Number:      len(cards) + 1,
			Question:    Sanitize(q.Question),
			Correct:     item.Correct,
			Explanation: Sanitize(item.Explanation),
			Options:     make([]ReviewOption, len(q.Options)),
		}
		for i, opt := range q.Options {
			card.Options[i] = ReviewOption{
				ID:    Sanitize(opt.ID),
				Text:  Sanitize(opt.Text),
				Class: Classify(opt.ID, q.CorrectAnswer, item),
			}
		}
		cards = append(cards, card)
	}
	return cards
}
