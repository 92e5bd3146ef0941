package biomech

import "fmt"

// BuildPrompt constructs the Arabic extraction prompt. It asks for exactly
// 13 numbered lines in "N. label: value" form, with the sentinel for
// anything the model cannot estimate, and ends with a worked example of the
// expected output.
func BuildPrompt() string {
	return fmt.Sprintf(`مهمتك هي إجراء تحليل بيوميكانيكي لحركة اللاعب في الفيديو المقدم، مع التركيز على مقاطع الجري أو الحركة الرياضية الواضحة.
استخرج المقاييس الـ 13 التالية وقدمها **كقائمة مرقمة ودقيقة**. لكل مقياس، قدم القيمة الرقمية المقدرة أو الفئة المطلوبة.

**هام جداً:**
*   إذا لم تتمكن من تقدير قيمة مقياس معين بشكل معقول بسبب جودة الفيديو أو عدم وضوح الحركة، اكتب بوضوح القيمة '%[1]s' لهذا المقياس.
*   التزم بالتنسيق المطلوب بدقة: رقم، نقطة، مسافة، اسم المقياس بالعربي كما هو مذكور بالأسفل، نقطتان، مسافة، القيمة المقدرة أو '%[1]s'.
*   لا تقم بتضمين أي نص إضافي أو تفسيرات أو مقدمات أو خواتيم خارج هذه القائمة المرقمة.

**المقاييس المطلوبة والمعايير المساعدة للتقييم:**

1.  متوسط زاوية الركبة اليمنى: (بالدرجات، أثناء مرحلة الدفع أو الوقوف إن أمكن)
    *   (معيار خطورة مساعد: > 145 أو < 110 درجة)
2.  متوسط زاوية الركبة اليسرى: (بالدرجات، أثناء مرحلة الدفع أو الوقوف إن أمكن)
    *   (معيار خطورة مساعد: > 145 أو < 110 درجة)
3.  متوسط عدم التماثل: (كنسبة مئوية %%، تقدير الفرق بين الجانبين في زوايا الركبة أو طول الخطوة)
    *   (معيار خطورة مساعد: > 15%% خطر، > 10%% متوسط)
4.  متوسط زاوية التلامس: (زاوية القدم/الساق الأمامية مع الأرض عند أول تلامس، بالدرجات)
    *   (معيار خطورة مساعد: > 70 أو < 110 -> خطر [ملاحظة: هذا المعيار قد يكون غير دقيق، اعتمد على التقدير البصري للزاوية])
5.  أقصى تسارع: (تقدير نسبي لأعلى قيمة لتغير السرعة، رقم بدون وحدة)
    *   (معيار خطورة مساعد: > 500,000 خطر، > 250,000 متوسط [ملاحظة: هذه أرقام نسبية، قدر القيمة البصرية للتسارع])
6.  عدد الخطوات: (إجمالي عدد الخطوات الواضحة في المقطع الذي تم تحليله)
7.  تردد الخطوات: (متوسط عدد الخطوات في الثانية، رقم عشري)
    *   (معيار خطورة مساعد: < 1.5 أو > 3 خطر)
8.  متوسط ثني الورك: (متوسط زاوية مفصل الورك، بالدرجات، ركز على مرحلة التأرجح الأمامي إن أمكن)
    *   (معيار خطورة مساعد: > 35 درجة قد يشير لتحميل زائد أو حركة غير فعالة)
9.  متوسط ميل الجذع: (متوسط زاوية ميل الجذع للأمام بالنسبة للعمودي، بالدرجات)
    *   (معيار خطورة مساعد: > 15 درجة خطر)
10. متوسط إمالة الحوض: (بالدرجات، تقدير للإمالة الأمامية/الخلفية، إيجابي للأمامية)
11. متوسط دوران الصدر: (بالدرجات، تقدير لمتوسط دوران الجذع العلوي حول المحور العمودي)
12. مستوى الخطورة: (قم بتصنيف شامل بناءً على عدد ومدى تجاوز المعايير المساعدة أعلاه: 'منخفض'، 'متوسط'، 'مرتفع')
13. درجة الخطورة: (عين درجة رقمية تقديرية من 0 إلى 5 بناءً على التقييم الشامل للخطورة، حيث 0=لا خطورة واضحة، 5=خطورة عالية جداً)


**مثال للتنسيق المطلوب:**
1. متوسط زاوية الركبة اليمنى: 151.3
2. متوسط زاوية الركبة اليسرى: 151.0
3. متوسط عدم التماثل: 5.6%%
4. متوسط زاوية التلامس: 24.2
5. أقصى تسارع: 473953
6. عدد الخطوات: 37
7. تردد الخطوات: 1.8
8. متوسط ثني الورك: %[1]s
9. متوسط ميل الجذع: 15.4
10. متوسط إمالة الحوض: -1.8
11. متوسط دوران الصدر: -30.9
12. مستوى الخطورة: متوسط
13. درجة الخطورة: 3`, NotClearAR)
}
