package skilleval

import (
	"fmt"
	"strings"
)

// ConnectivityTestPrompt is a trivial text-only prompt used to verify the
// provider is reachable and responding.
const ConnectivityTestPrompt = "Please respond with the number 5 to test API connectivity."

// BuildPrompt constructs the Arabic scoring prompt for one skill. It embeds
// the rubric and instructs the model to answer with the bare digit only.
func BuildPrompt(skill Skill, group AgeGroup) string {
	var b strings.Builder

	fmt.Fprintf(&b, "مهمتك هي تقييم مهارة كرة القدم '%s' المعروضة في الفيديو للاعب ضمن الفئة العمرية '%s'.\n",
		LabelAR(skill), group)
	fmt.Fprintf(&b, "استخدم المعايير التالية **حصراً** لتقييم الأداء وتحديد درجة رقمية من 0 إلى %d:\n\n",
		MaxScorePerSkill)

	b.WriteString(RubricFor(skill, group))
	b.WriteString("\n\n")

	b.WriteString("شاهد الفيديو بعناية. بناءً على المعايير المذكورة أعلاه فقط، ما هي الدرجة التي تصف أداء اللاعب بشكل أفضل؟\n\n")
	b.WriteString("هام جدًا: قم بالرد بالدرجة الرقمية الصحيحة فقط (مثال: \"3\" أو \"5\"). لا تقم بتضمين أي شروحات أو أوصاف أو أي نص آخر أو رموز إضافية. فقط الرقم.")

	return b.String()
}
