// Package biomech extracts biomechanical movement metrics from a player
// video. The model answers with a fixed numbered list of 13 metrics; values
// it cannot estimate carry an explicit "not clear" sentinel rather than
// being omitted.
package biomech

// Metric identifies one extracted measurement.
type Metric string

const (
	MetricRightKneeAngleAvg  Metric = "Right_Knee_Angle_Avg"
	MetricLeftKneeAngleAvg   Metric = "Left_Knee_Angle_Avg"
	MetricAsymmetryAvgPct    Metric = "Asymmetry_Avg_Percent"
	MetricContactAngleAvg    Metric = "Contact_Angle_Avg"
	MetricMaxAcceleration    Metric = "Max_Acceleration"
	MetricStepsCount         Metric = "Steps_Count"
	MetricStepFrequency      Metric = "Step_Frequency"
	MetricHipFlexionAvg      Metric = "Hip_Flexion_Avg"
	MetricTrunkLeanAvg       Metric = "Trunk_Lean_Avg"
	MetricPelvicTiltAvg      Metric = "Pelvic_Tilt_Avg"
	MetricThoraxRotationAvg  Metric = "Thorax_Rotation_Avg"
	MetricRiskLevel          Metric = "Risk_Level"
	MetricRiskScore          Metric = "Risk_Score"
)

// Metrics lists every extracted metric in report order. The order matches
// the numbered list the model is asked to produce.
var Metrics = []Metric{
	MetricRightKneeAngleAvg,
	MetricLeftKneeAngleAvg,
	MetricAsymmetryAvgPct,
	MetricContactAngleAvg,
	MetricMaxAcceleration,
	MetricStepsCount,
	MetricStepFrequency,
	MetricHipFlexionAvg,
	MetricTrunkLeanAvg,
	MetricPelvicTiltAvg,
	MetricThoraxRotationAvg,
	MetricRiskLevel,
	MetricRiskScore,
}

// NotClearAR is the sentinel the model writes for a metric it cannot
// estimate. Records store it raw; translation to English happens at
// display time.
const NotClearAR = "غير واضح"

// NotClearEN is the English display form of the sentinel.
const NotClearEN = "Not Clear"

// LabelsAR maps metrics to the Arabic labels used in the prompt and in the
// model's numbered answer. The parenthetical unit is part of the label.
var LabelsAR = map[Metric]string{
	MetricRightKneeAngleAvg: "متوسط زاوية الركبة اليمنى (°)",
	MetricLeftKneeAngleAvg:  "متوسط زاوية الركبة اليسرى (°)",
	MetricAsymmetryAvgPct:   "متوسط عدم التماثل (%)",
	MetricContactAngleAvg:   "متوسط زاوية التلامس (°)",
	MetricMaxAcceleration:   "أقصى تسارع (قيمة نسبية)",
	MetricStepsCount:        "عدد الخطوات",
	MetricStepFrequency:     "تردد الخطوات (خطوة/ثانية)",
	MetricHipFlexionAvg:     "متوسط ثني الورك (°)",
	MetricTrunkLeanAvg:      "متوسط ميل الجذع (°)",
	MetricPelvicTiltAvg:     "متوسط إمالة الحوض (°)",
	MetricThoraxRotationAvg: "متوسط دوران الصدر (°)",
	MetricRiskLevel:         "مستوى الخطورة",
	MetricRiskScore:         "درجة الخطورة",
}

// LabelsEN maps metrics to English display labels.
var LabelsEN = map[Metric]string{
	MetricRightKneeAngleAvg: "Right Knee Angle Avg (°)",
	MetricLeftKneeAngleAvg:  "Left Knee Angle Avg (°)",
	MetricAsymmetryAvgPct:   "Asymmetry Avg (%)",
	MetricContactAngleAvg:   "Contact Angle Avg (°)",
	MetricMaxAcceleration:   "Max Acceleration (Relative)",
	MetricStepsCount:        "Steps Count",
	MetricStepFrequency:     "Step Frequency (steps/sec)",
	MetricHipFlexionAvg:     "Hip Flexion Avg (°)",
	MetricTrunkLeanAvg:      "Trunk Lean Avg (°)",
	MetricPelvicTiltAvg:     "Pelvic Tilt Avg (°)",
	MetricThoraxRotationAvg: "Thorax Rotation Avg (°)",
	MetricRiskLevel:         "Risk Level",
	MetricRiskScore:         "Risk Score",
}

// valueMapARToEN translates categorical Arabic values the model may return
// into English display values. Numeric values pass through unchanged.
var valueMapARToEN = map[string]string{
	NotClearAR: NotClearEN,
	"منخفض":    "Low",
	"متوسط":    "Medium",
	"مرتفع":    "High",
}

// TranslateValue maps a categorical Arabic value to its English display
// form, passing through anything not in the map (numbers, percentages).
func TranslateValue(v string) string {
	if en, ok := valueMapARToEN[v]; ok {
		return en
	}
	return v
}

// Record holds one extraction run's values, keyed by metric. Values are
// stored exactly as parsed, sentinel included.
type Record map[Metric]string

// NewRecord returns a Record with every metric set to the sentinel, so a
// partial or failed extraction still covers the full metric set.
func NewRecord() Record {
	r := make(Record, len(Metrics))
	for _, m := range Metrics {
		r[m] = NotClearAR
	}
	return r
}

// ClearCount reports how many metrics carry a real value.
func (r Record) ClearCount() int {
	n := 0
	for _, v := range r {
		if v != NotClearAR {
			n++
		}
	}
	return n
}
