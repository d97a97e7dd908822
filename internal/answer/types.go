package answer

// #region answer
// Answer is an ordinal reply to one of the five questions.
type Answer int

const (
	No       Answer = 0
	Confused Answer = 1
	Yes      Answer = 2
)

// Vector holds the five answers of one run, in question order.
type Vector [5]Answer

// #endregion answer
