package responses

// Supported interface languages
const (
	LanguageEnglish = "en"
	LanguageArabic  = "ar"
	LanguagePunjabi = "pa"
)

var welcome = map[string]string{
	LanguageEnglish: `🇦🇪 Welcome to the UAE Information Chatbot!

I'm here to help you discover the best of the United Arab Emirates. I can provide information about:

🏖️ Tourist attractions and hidden gems
🚗 Transportation and routes
🎉 Cultural events and festivals
🚨 Emergency services and contacts
🌤️ Weather and activity suggestions
🔍 **Web search for UAE topics** - Ask me anything about the UAE!

What would you like to know about the UAE today?`,
	LanguageArabic: `🇦🇪 أهلاً بك في روبوت معلومات الإمارات العربية المتحدة!

أنا هنا لمساعدتك في اكتشاف أفضل ما في دولة الإمارات العربية المتحدة. يمكنني تقديم معلومات حول:

🏖️ المعالم السياحية والأماكن المخفية
🚗 النقل والطرق
🎉 الأحداث الثقافية والمهرجانات
🚨 الخدمات الطارئة وأرقام الاتصال
🌤️ الطقس والتوصيات المحلية
🔍 **البحث على الويب لمواضيع الإمارات** - اسألني عن أي شيء يتعلق بالإمارات!

ماذا تريد أن تعرف عن الإمارات اليوم؟`,
	LanguagePunjabi: `🇦🇪 UAE معلومات چیٹ بوٹ وچ خوش آمدید!

میں تہانوں متحدہ عرب امارات دا بہترین دکھاؤن لئی ایتھے آں۔ میں معلومات دے سکدا آں:

🏖️ سیاحی مقامات تے چھپے ہوئے موتی
🚗 ٹرانسپورٹ تے راستے
🎉 ثقافتی واقعات تے تہوار
🚨 ایمرجنسی سروسز تے رابطے
🌤️ موسم تے مقامی سفارشات
🔍 **UAE موضوعات لئی ویب سرچ** - UAE بارے کی جاننا چاہندے او؟

اج تسیں UAE بارے کی جاننا چاہندے او؟`,
}

var languageNames = map[string]string{
	LanguageEnglish: "English",
	LanguageArabic:  "العربية",
	LanguagePunjabi: "ਪੰਜਾਬੀ",
}

// Welcome returns the greeting shown at the top of every session
func Welcome(lang string) string {
	if msg, ok := welcome[lang]; ok {
		return msg
	}
	return welcome[LanguageEnglish]
}

// IsSupportedLanguage reports whether lang has a welcome message
func IsSupportedLanguage(lang string) bool {
	_, ok := welcome[lang]
	return ok
}

// LanguageName returns the display name of lang
func LanguageName(lang string) string {
	if name, ok := languageNames[lang]; ok {
		return name
	}
	return languageNames[LanguageEnglish]
}
