package catalog

// DefaultMessages returns the built-in UI messages for the default language set.
func DefaultMessages() []Message {
	return []Message{
		// English (base language)
		{Key: "ui.title", LanguageCode: "en", Value: "Advanced Leaf Disease Analyzer", Namespace: "ui"},
		{Key: "ui.upload.title", LanguageCode: "en", Value: "Upload Leaf Image", Namespace: "ui"},
		{Key: "ui.upload.description", LanguageCode: "en", Value: "Select a potato leaf image for analysis", Namespace: "ui"},
		{Key: "ui.analyze.button", LanguageCode: "en", Value: "Analyze Leaf Disease", Namespace: "ui"},
		{Key: "ui.analyze.another", LanguageCode: "en", Value: "Analyze Another Leaf", Namespace: "ui"},
		{Key: "ui.results.title", LanguageCode: "en", Value: "Advanced Leaf Disease Analysis Result", Namespace: "ui"},
		{Key: "ui.language.selector", LanguageCode: "en", Value: "Select Language", Namespace: "ui"},
		{Key: "ui.model.selector", LanguageCode: "en", Value: "Select AI Model", Namespace: "ui"},
		{Key: "ui.disease.classification", LanguageCode: "en", Value: "Disease Classification", Namespace: "ui"},
		{Key: "disease.early_blight.name", LanguageCode: "en", Value: "Early Blight", Namespace: "disease"},
		{Key: "disease.late_blight.name", LanguageCode: "en", Value: "Late Blight", Namespace: "disease"},
		{Key: "disease.healthy.name", LanguageCode: "en", Value: "Healthy", Namespace: "disease"},

		// Spanish
		{Key: "ui.title", LanguageCode: "es", Value: "Analizador Avanzado de Enfermedades de Hojas", Namespace: "ui"},
		{Key: "ui.upload.title", LanguageCode: "es", Value: "Subir Imagen de Hoja", Namespace: "ui"},
		{Key: "ui.upload.description", LanguageCode: "es", Value: "Seleccione una imagen de hoja de papa para análisis", Namespace: "ui"},
		{Key: "ui.analyze.button", LanguageCode: "es", Value: "Analizar Enfermedad de Hoja", Namespace: "ui"},
		{Key: "ui.analyze.another", LanguageCode: "es", Value: "Analizar Otra Hoja", Namespace: "ui"},
		{Key: "ui.results.title", LanguageCode: "es", Value: "Resultado del Análisis Avanzado de Enfermedades", Namespace: "ui"},
		{Key: "ui.language.selector", LanguageCode: "es", Value: "Seleccionar Idioma", Namespace: "ui"},
		{Key: "ui.model.selector", LanguageCode: "es", Value: "Seleccionar Modelo de IA", Namespace: "ui"},
		{Key: "ui.disease.classification", LanguageCode: "es", Value: "Clasificación de Enfermedad", Namespace: "ui"},
		{Key: "disease.early_blight.name", LanguageCode: "es", Value: "Tizón Temprano", Namespace: "disease"},
		{Key: "disease.late_blight.name", LanguageCode: "es", Value: "Tizón Tardío", Namespace: "disease"},
		{Key: "disease.healthy.name", LanguageCode: "es", Value: "Saludable", Namespace: "disease"},

		// French
		{Key: "ui.title", LanguageCode: "fr", Value: "Analyseur Avancé de Maladies des Feuilles", Namespace: "ui"},
		{Key: "ui.upload.title", LanguageCode: "fr", Value: "Télécharger l'image de feuille", Namespace: "ui"},
		{Key: "ui.upload.description", LanguageCode: "fr", Value: "Sélectionnez une image de feuille de pomme de terre pour l'analyse", Namespace: "ui"},
		{Key: "ui.analyze.button", LanguageCode: "fr", Value: "Analyser la Maladie des Feuilles", Namespace: "ui"},
		{Key: "ui.analyze.another", LanguageCode: "fr", Value: "Analyser une Autre Feuille", Namespace: "ui"},
		{Key: "ui.results.title", LanguageCode: "fr", Value: "Résultat de l'Analyse Avancée des Maladies", Namespace: "ui"},
		{Key: "ui.language.selector", LanguageCode: "fr", Value: "Sélectionner la langue", Namespace: "ui"},
		{Key: "ui.model.selector", LanguageCode: "fr", Value: "Sélectionner le Modèle IA", Namespace: "ui"},
		{Key: "ui.disease.classification", LanguageCode: "fr", Value: "Classification des Maladies", Namespace: "ui"},
		{Key: "disease.early_blight.name", LanguageCode: "fr", Value: "Brûlure précoce", Namespace: "disease"},
		{Key: "disease.late_blight.name", LanguageCode: "fr", Value: "Brûlure tardive", Namespace: "disease"},
		{Key: "disease.healthy.name", LanguageCode: "fr", Value: "Sain", Namespace: "disease"},

		// Hindi
		{Key: "ui.title", LanguageCode: "hi", Value: "उन्नत पत्ती रोग विश्लेषक", Namespace: "ui"},
		{Key: "ui.upload.title", LanguageCode: "hi", Value: "पत्ती की छवि अपलोड करें", Namespace: "ui"},
		{Key: "ui.upload.description", LanguageCode: "hi", Value: "विश्लेषण के लिए आलू के पत्ते की छवि चुनें", Namespace: "ui"},
		{Key: "ui.analyze.button", LanguageCode: "hi", Value: "पत्ती रोग का विश्लेषण करें", Namespace: "ui"},
		{Key: "ui.analyze.another", LanguageCode: "hi", Value: "दूसरे पत्ते का विश्लेषण करें", Namespace: "ui"},
		{Key: "ui.results.title", LanguageCode: "hi", Value: "उन्नत पत्ती रोग विश्लेषण परिणाम", Namespace: "ui"},
		{Key: "ui.language.selector", LanguageCode: "hi", Value: "भाषा चुनें", Namespace: "ui"},
		{Key: "ui.model.selector", LanguageCode: "hi", Value: "AI मॉडल चुनें", Namespace: "ui"},
		{Key: "ui.disease.classification", LanguageCode: "hi", Value: "रोग वर्गीकरण", Namespace: "ui"},
		{Key: "disease.early_blight.name", LanguageCode: "hi", Value: "प्रारंभिक अंगमारी", Namespace: "disease"},
		{Key: "disease.late_blight.name", LanguageCode: "hi", Value: "देर से अंगमारी", Namespace: "disease"},
		{Key: "disease.healthy.name", LanguageCode: "hi", Value: "स्वस्थ", Namespace: "disease"},

		// Chinese (Simplified)
		{Key: "ui.title", LanguageCode: "zh", Value: "高级叶片疾病分析仪", Namespace: "ui"},
		{Key: "ui.upload.title", LanguageCode: "zh", Value: "上传叶片图片", Namespace: "ui"},
		{Key: "ui.upload.description", LanguageCode: "zh", Value: "选择马铃薯叶片图像进行分析", Namespace: "ui"},
		{Key: "ui.analyze.button", LanguageCode: "zh", Value: "分析叶片疾病", Namespace: "ui"},
		{Key: "ui.analyze.another", LanguageCode: "zh", Value: "分析另一片叶子", Namespace: "ui"},
		{Key: "ui.results.title", LanguageCode: "zh", Value: "高级叶片疾病分析结果", Namespace: "ui"},
		{Key: "ui.language.selector", LanguageCode: "zh", Value: "选择语言", Namespace: "ui"},
		{Key: "ui.model.selector", LanguageCode: "zh", Value: "选择AI模型", Namespace: "ui"},
		{Key: "ui.disease.classification", LanguageCode: "zh", Value: "疾病分类", Namespace: "ui"},
		{Key: "disease.early_blight.name", LanguageCode: "zh", Value: "早疫病", Namespace: "disease"},
		{Key: "disease.late_blight.name", LanguageCode: "zh", Value: "晚疫病", Namespace: "disease"},
		{Key: "disease.healthy.name", LanguageCode: "zh", Value: "健康", Namespace: "disease"},
	}
}
