package enums

// Frequency-scale deal breakers are ordered: the index distance between two
// values drives the graded lifestyle penalty.

type DrinkingHabit string

const (
	DrinkingNever        DrinkingHabit = "never"
	DrinkingOccasionally DrinkingHabit = "occasionally"
	DrinkingRegularly    DrinkingHabit = "regularly"
	DrinkingFrequently   DrinkingHabit = "frequently"
)

var drinkingOrder = map[DrinkingHabit]int{
	DrinkingNever:        0,
	DrinkingOccasionally: 1,
	DrinkingRegularly:    2,
	DrinkingFrequently:   3,
}

// Scale returns the position of h on the frequency scale, or -1 when unset
// or unknown.
func (h DrinkingHabit) Scale() int {
	if idx, ok := drinkingOrder[h]; ok {
		return idx
	}
	return -1
}

type ChildrenStance string

const (
	ChildrenNone     ChildrenStance = "none"
	ChildrenWantSome ChildrenStance = "want_some"
	ChildrenHaveSome ChildrenStance = "have_some"
	ChildrenWantMore ChildrenStance = "want_more"
	ChildrenDontWant ChildrenStance = "dont_want"
)

// WantsChildren reports whether the stance implies wanting (more) children.
func (c ChildrenStance) WantsChildren() bool {
	return c == ChildrenWantSome || c == ChildrenWantMore
}

type PoliticalLeaning string

const (
	PoliticsLiberal      PoliticalLeaning = "liberal"
	PoliticsConservative PoliticalLeaning = "conservative"
	PoliticsModerate     PoliticalLeaning = "moderate"
	PoliticsApolitical   PoliticalLeaning = "apolitical"
)

type ExerciseHabit string

const (
	ExerciseNever     ExerciseHabit = "never"
	ExerciseRarely    ExerciseHabit = "rarely"
	ExerciseSometimes ExerciseHabit = "sometimes"
	ExerciseRegularly ExerciseHabit = "regularly"
	ExerciseDaily     ExerciseHabit = "daily"
)

var exerciseOrder = map[ExerciseHabit]int{
	ExerciseNever:     0,
	ExerciseRarely:    1,
	ExerciseSometimes: 2,
	ExerciseRegularly: 3,
	ExerciseDaily:     4,
}

func (h ExerciseHabit) Scale() int {
	if idx, ok := exerciseOrder[h]; ok {
		return idx
	}
	return -1
}

type EducationLevel string

const (
	EducationHighSchool  EducationLevel = "high_school"
	EducationSomeCollege EducationLevel = "some_college"
	EducationBachelors   EducationLevel = "bachelors"
	EducationMasters     EducationLevel = "masters"
	EducationDoctorate   EducationLevel = "doctorate"
)
