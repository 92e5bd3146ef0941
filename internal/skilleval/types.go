// Package skilleval scores football skills from a player video against
// age-banded rubrics. Each skill is scored 0..5 by a separate model call;
// the per-skill scores aggregate into a total and a letter grade.
package skilleval

// MaxScorePerSkill is the top of the per-skill scale.
const MaxScorePerSkill = 5

// AgeGroup selects the skill set and rubrics to evaluate against.
type AgeGroup string

const (
	AgeGroup5To8  AgeGroup = "5 إلى 8 سنوات"
	AgeGroup8Plus AgeGroup = "8 سنوات وأكثر"
)

// AgeGroups lists the selectable age groups in display order.
func AgeGroups() []AgeGroup {
	return []AgeGroup{AgeGroup5To8, AgeGroup8Plus}
}

// Skill identifies one evaluated skill. The keys are stable internal
// identifiers; display goes through LabelAR.
type Skill string

const (
	// Age 5 to 8.
	SkillRunningBasic     Skill = "Running_Basic"
	SkillBallFeeling      Skill = "Ball_Feeling"
	SkillFocusOnTask      Skill = "Focus_On_Task"
	SkillFirstTouchSimple Skill = "First_Touch_Simple"

	// Age 8 and older.
	SkillJumping        Skill = "Jumping"
	SkillRunningControl Skill = "Running_Control"
	SkillPassing        Skill = "Passing"
	SkillReceiving      Skill = "Receiving"
	SkillZigzag         Skill = "Zigzag"
)

var skills5To8 = []Skill{
	SkillRunningBasic, SkillBallFeeling, SkillFocusOnTask, SkillFirstTouchSimple,
}

var skills8Plus = []Skill{
	SkillJumping, SkillRunningControl, SkillPassing, SkillReceiving, SkillZigzag,
}

var labelsAR = map[Skill]string{
	SkillRunningBasic:     "الجري",
	SkillBallFeeling:      "الإحساس بالكرة",
	SkillFocusOnTask:      "التركيز وتنفيذ المطلوب",
	SkillFirstTouchSimple: "اللمسة الأولى (استلام بسيط)",

	SkillJumping:        "القفز بالكرة (تنطيط الركبة)",
	SkillRunningControl: "الجري بالكرة (التحكم)",
	SkillPassing:        "التمرير",
	SkillReceiving:      "استقبال الكرة",
	SkillZigzag:         "المراوغة (زجزاج)",
}

// SkillsFor returns the skills evaluated for an age group, in evaluation
// order. Unknown age groups get an empty set.
func SkillsFor(group AgeGroup) []Skill {
	switch group {
	case AgeGroup5To8:
		return append([]Skill(nil), skills5To8...)
	case AgeGroup8Plus:
		return append([]Skill(nil), skills8Plus...)
	default:
		return nil
	}
}

// LabelAR returns the Arabic display label for a skill. Unknown skills fall
// back to the raw key.
func LabelAR(s Skill) string {
	if l, ok := labelsAR[s]; ok {
		return l
	}
	return string(s)
}

// Grade is the aggregated letter grade.
type Grade string

const (
	GradeExcellent  Grade = "ممتاز (A)"
	GradeVeryGood   Grade = "جيد جداً (B)"
	GradeGood       Grade = "جيد (C)"
	GradeFair       Grade = "مقبول (D)"
	GradeWeak       Grade = "ضعيف (F)"
	GradeIncomplete Grade = "غير مكتمل"
	GradeNone       Grade = "N/A"
)

// Summary is the aggregated outcome of an evaluation run.
type Summary struct {
	Scores   map[Skill]int
	Total    int
	MaxScore int
	Grade    Grade
}
