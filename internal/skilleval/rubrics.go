package skilleval

// Scoring rubrics, one per skill per age group. The model is instructed to
// use these criteria exclusively, so the wording is part of the contract.

const rubricFallback = "لا توجد معايير محددة لهذه المهارة في هذه الفئة العمرية."

var rubrics5To8 = map[Skill]string{
	SkillRunningBasic: `**معايير تقييم الجري (5-8 سنوات):**
- 0: لا يستطيع الجري أو يمشي فقط.
- 1: يجري بشكل غير متزن أو بطيء جدًا.
- 2: يجري بوتيرة مقبولة ولكن ببعض التعثر أو التردد.
- 3: يجري بثقة وتوازن جيدين لمعظم المسافة.
- 4: يجري بسرعة جيدة وتوازن ممتاز.
- 5: يجري بسرعة عالية وتناسق حركي ممتاز وواضح.`,

	SkillBallFeeling: `**معايير تقييم الإحساس بالكرة (5-8 سنوات):**
- 0: يتجنب لمس الكرة أو يفقدها فورًا عند اللمس.
- 1: يلمس الكرة بقدم واحدة فقط بشكل متردد، الكرة تبتعد كثيرًا.
- 2: يحاول لمس الكرة بكلتا القدمين، لكن التحكم ضعيف.
- 3: يظهر بعض التحكم الأساسي، يبقي الكرة قريبة أحيانًا.
- 4: يظهر تحكمًا جيدًا، يلمس الكرة بباطن وظاهر القدم، يحافظ عليها قريبة نسبيًا.
- 5: يظهر تحكمًا ممتازًا ولمسات واثقة ومتنوعة، يبقي الكرة قريبة جدًا أثناء الحركة البسيطة.`,

	SkillFocusOnTask: `**معايير تقييم التركيز وتنفيذ المطلوب (5-8 سنوات):** (يُقيّم بناءً على السلوك المُلاحظ في الفيديو المتعلق بالمهمة الكروية الظاهرة)
- 0: لا يُظهر أي اهتمام بالمهمة الكروية، يتشتت تمامًا.
- 1: يبدأ المهمة لكن يتشتت بسرعة وبشكل متكرر.
- 2: يحاول إكمال المهمة لكن يفتقر للتركيز المستمر، يتوقف أو ينظر حوله كثيرًا.
- 3: يركز بشكل مقبول على المهمة، يكمل أجزاء منها بانتباه.
- 4: يظهر تركيزًا جيدًا ومستمرًا على المهمة الكروية المعروضة في الفيديو.
- 5: يظهر تركيزًا عاليًا وانغماسًا واضحًا في المهمة الكروية، يحاول بجدية وإصرار.`,

	SkillFirstTouchSimple: `**معايير تقييم اللمسة الأولى (استلام بسيط) (5-8 سنوات):**
- 0: الكرة ترتد بعيدًا جدًا عن السيطرة عند أول لمسة.
- 1: يوقف الكرة بصعوبة، تتطلب لمسات متعددة للسيطرة.
- 2: يستلم الكرة بشكل مقبول لكنها تبتعد قليلاً، يتطلب خطوة إضافية للتحكم.
- 3: استلام جيد، اللمسة الأولى تبقي الكرة ضمن نطاق قريب.
- 4: استلام جيد جدًا، لمسة أولى نظيفة تهيئ الكرة أمامه مباشرة.
- 5: استلام ممتاز، لمسة أولى ناعمة وواثقة، سيطرة فورية.`,
}

var rubrics8Plus = map[Skill]string{
	SkillJumping: `**معايير تقييم القفز بالكرة (تنطيط الركبة) (8+ سنوات):**
- 0: لا توجد محاولات أو لمسات ناجحة بالركبة أثناء الطيران.
- 1: لمسة واحدة ناجحة بالركبة أثناء الطيران، مع تحكم ضعيف.
- 2: لمستان ناجحتان بالركبة أثناء الطيران، تحكم مقبول.
- 3: ثلاث لمسات ناجحة بالركبة، تحكم جيد وثبات.
- 4: أربع لمسات ناجحة، تحكم ممتاز وثبات هوائي جيد.
- 5: خمس لمسات أو أكثر، تحكم استثنائي، إيقاع وثبات ممتازين.`,

	SkillRunningControl: `**معايير تقييم الجري بالكرة (التحكم) (8+ سنوات):**
- 0: تحكم ضعيف جدًا، الكرة تبتعد كثيرًا عن القدم.
- 1: تحكم ضعيف، الكرة تبتعد بشكل ملحوظ أحيانًا.
- 2: تحكم مقبول، الكرة تبقى ضمن نطاق واسع حول اللاعب.
- 3: تحكم جيد، الكرة تبقى قريبة بشكل عام أثناء الجري بسرعات مختلفة.
- 4: تحكم جيد جدًا، الكرة قريبة باستمرار حتى مع تغيير السرعة والاتجاه البسيط.
- 5: تحكم ممتاز، الكرة تبدو ملتصقة بالقدم، سيطرة كاملة حتى مع المناورات.`,

	SkillPassing: `**معايير تقييم التمرير (8+ سنوات):**
- 0: تمريرة خاطئة تمامًا أو ضعيفة جدًا أو بدون دقة.
- 1: تمريرة بدقة ضعيفة أو قوة غير مناسبة بشكل كبير.
- 2: تمريرة مقبولة تصل للهدف ولكن بقوة أو دقة متوسطة.
- 3: تمريرة جيدة ودقيقة بقوة مناسبة للمسافة والهدف.
- 4: تمريرة دقيقة جدًا ومتقنة بقوة مثالية، تضع المستلم في وضع جيد.
- 5: تمريرة استثنائية، دقة وقوة وتوقيت مثالي، تكسر الخطوط أو تضع المستلم في موقف ممتاز.`,

	SkillReceiving: `**معايير تقييم استقبال الكرة (8+ سنوات):**
- 0: فشل في السيطرة على الكرة تمامًا عند الاستقبال.
- 1: لمسة أولى سيئة، الكرة تبتعد كثيرًا أو تتطلب جهدًا للسيطرة عليها.
- 2: استقبال مقبول، الكرة تحت السيطرة بعد لمستين أو بحركة إضافية.
- 3: استقبال جيد، لمسة أولى نظيفة تبقي الكرة قريبة ومتاحة للعب.
- 4: استقبال جيد جدًا، لمسة أولى ممتازة تهيئ الكرة للخطوة التالية بسهولة (تمرير، تسديد، مراوغة).
- 5: استقبال استثنائي، لمسة أولى مثالية تحت الضغط، تحكم فوري وسلس، يسمح باللعب السريع.`,

	SkillZigzag: `**معايير تقييم المراوغة (زجزاج) (8+ سنوات):**
- 0: فقدان السيطرة على الكرة عند محاولة تغيير الاتجاه بين الأقماع.
- 1: تغيير اتجاه بطيء مع ابتعاد الكرة عن القدم بشكل واضح.
- 2: تغيير اتجاه مقبول مع الحفاظ على الكرة ضمن نطاق تحكم واسع، يلمس الأقماع أحيانًا.
- 3: تغيير اتجاه جيد مع إبقاء الكرة قريبة نسبيًا، يتجنب الأقماع.
- 4: تغيير اتجاه سريع وسلس مع إبقاء الكرة قريبة جدًا من القدم.
- 5: تغيير اتجاه خاطف وسلس مع سيطرة تامة على الكرة (تبدو ملتصقة بالقدم)، وخفة حركة واضحة.`,
}

// RubricFor returns the rubric text for a skill in an age group, or a
// fallback note when no rubric exists for that combination.
func RubricFor(skill Skill, group AgeGroup) string {
	var r string
	switch group {
	case AgeGroup5To8:
		r = rubrics5To8[skill]
	case AgeGroup8Plus:
		r = rubrics8Plus[skill]
	}
	if r == "" {
		return rubricFallback
	}
	return r
}
