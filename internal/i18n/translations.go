package i18n

var translations = map[Language]map[string]string{
	French: {
		// navigation
		"home":       "Accueil",
		"assessment": "Bilan",
		"program":    "Programme",
		"settings":   "Paramètres",
		"results":    "Résultats",
		"back":       "Retour",
		"backToHome": "Retour à l'accueil",
		"quit":       "Quitter",

		// timer controls
		"start":        "Démarrer",
		"pause":        "Pause",
		"reset":        "Réinitialiser",
		"finish":       "Terminer",
		"saveAndExit":  "Enregistrer et quitter",
		"nextExercise": "Exercice suivant",
		"running":      "En cours",
		"paused":       "En pause",
		"ready":        "Prêt",

		// common
		"minutes":           "min",
		"exercises":         "exercices",
		"exercise":          "Exercice",
		"estimatedDuration": "Durée estimée",
		"exerciseAdvice":    "Gardez un rythme régulier et respirez calmement.",
		"upNext":            "À suivre",
		"completed":         "Terminé",
		"pending":           "À faire",
		"easy":              "Facile",
		"medium":            "Moyen",
		"hard":              "Difficile",
		"sessions":          "Séances",
		"progress":          "Progression",

		// dashboard
		"welcome":          "Bienvenue sur Aji Tssourat",
		"healthPartner":    "Votre partenaire santé au quotidien",
		"improveForm":      "Améliorez votre forme pas à pas",
		"averageMotricity": "Motricité moyenne",
		"keepEfforts":      "Continuez vos efforts, chaque séance compte !",
		"startAssessment":  "Commencer le bilan",
		"myProgram":        "Mon programme",
		"coachMessage":     "Message du coach",
		"coachAdvice":      "La régularité compte plus que l'intensité. Trois séances par semaine suffisent pour progresser.",
		"notAvailable":     "Non disponible",
		"metUnit":          "MET-min/sem",

		// assessment
		"bilanTitle":           "Bilan moteur",
		"theTests":             "Les tests",
		"testsCompleted":       "Tests réalisés",
		"averageScore":         "Score moyen",
		"seeDetailedResults":   "Voir les résultats détaillés",
		"instructions":         "Consignes",
		"followInstructions":   "Suivez les consignes de la vidéo",
		"maintainPosture":      "Gardez une bonne posture",
		"goAtYourPace":         "Allez à votre rythme",
		"stopIfPain":           "Arrêtez en cas de douleur",
		"video":                "Vidéo",
		"scoreObtained":        "Score obtenu",
		"observations":         "Observations",
		"describeObservations": "Décrivez vos observations...",
		"redo":                 "Refaire",
		"evaluate":             "Évaluez",
		"evaluation":           "Évaluation",
		"testDone":             "Test terminé !",

		"hipMobility":             "Mobilité de la hanche",
		"hipMobilityDesc":         "Fente avant pour évaluer l'amplitude de la hanche",
		"balanceStability":        "Équilibre et stabilité",
		"balanceStabilityDesc":    "Tenue sur une jambe, yeux ouverts puis fermés",
		"muscleStrength":          "Force musculaire",
		"muscleStrengthDesc":      "Squat profond pour mesurer la force des jambes",
		"spineFlexibility":        "Souplesse du dos",
		"spineFlexibilityDesc":    "Flexion du tronc vers l'avant",
		"coordination":            "Coordination",
		"coordinationDesc":        "Mouvements croisés bras-jambes",
		"cardioEndurance":         "Endurance cardio",
		"cardioEnduranceDesc":     "Marche rapide sur place pendant cinq minutes",
		"proprioception":          "Proprioception",
		"proprioceptionDesc":      "Scan corporel et perception des appuis",
		"breathingRelaxation":     "Respiration et relaxation",
		"breathingRelaxationDesc": "Respiration abdominale contrôlée",

		// program
		"programTitle":      "Mon programme",
		"availableSessions": "Séances disponibles",
		"sessionsCompleted": "Séances terminées",
		"sessionTime":       "Temps de séance",
		"sessionComplete":   "Séance terminée, bravo !",
		"tips":              "Conseils",
		"tip1":              "Échauffez-vous avant chaque séance",
		"tip2":              "Respectez votre rythme",
		"tip3":              "Hydratez-vous régulièrement",
		"tip4":              "Pratiquez 3 fois par semaine",

		"morningMobility":         "Mobilité matinale",
		"balanceStabilitySession": "Équilibre et stabilité",
		"muscleStrengthSession":   "Renforcement musculaire",
		"warmup":                  "Échauffement",
		"hipMobilityEx":           "Mobilité des hanches",
		"spineFlexibilityEx":      "Souplesse de la colonne",
		"breathingEx":             "Respiration",
		"staticBalance":           "Équilibre statique",
		"lineWalking":             "Marche sur une ligne",
		"proprioceptionEx":        "Proprioception",
		"coolDown":                "Retour au calme",
		"upperBodyStrength":       "Renforcement du haut du corps",
		"lowerBodyStrength":       "Renforcement du bas du corps",
		"stretching":              "Étirements",

		// settings and account
		"language":           "Langue",
		"languageName":       "Français",
		"switchLanguage":     "Changer de langue",
		"logout":             "Se déconnecter",
		"login":              "Connexion",
		"register":           "Créer un compte",
		"email":              "Email",
		"password":           "Mot de passe",
		"loginPrompt":        "Connectez-vous pour suivre vos progrès",
		"invalidCredentials": "Email ou mot de passe incorrect",
		"signedInAs":         "Connecté en tant que",
		"onboardingTitle":    "Votre niveau d'activité",
		"metScorePrompt":     "Score MET hebdomadaire (questionnaire IPAQ)",
		"levelLow":           "Faible",
		"levelModerate":      "Modéré",
		"levelHigh":          "Élevé",

		// results
		"resultsTitle": "Résultats détaillés",
		"noResults":    "Aucun résultat enregistré pour le moment",
		"observation":  "Observation",

		// faq
		"faqTitle":            "Questions fréquentes",
		"faqSubtitle":         "Trouvez rapidement une réponse",
		"searchQuestion":      "Rechercher une question...",
		"allCategories":       "Toutes",
		"noQuestionsFound":    "Aucune question trouvée",
		"tryAnotherSearch":    "Essayez une autre recherche",
		"questionsFound":      "question(s) trouvée(s)",
		"catPhysicalActivity": "Activité physique",
		"catHealth":           "Santé",
		"catIPAQ":             "IPAQ",
		"catAdvice":           "Conseils",
		"catNutrition":        "Nutrition",

		"faqQ1":  "Combien de temps dois-je bouger par jour ?",
		"faqA1":  "Visez au moins 30 minutes d'activité modérée par jour, en une ou plusieurs fois.",
		"faqQ2":  "Faut-il faire de la musculation ?",
		"faqA2":  "Deux séances de renforcement par semaine aident à préserver la force et l'équilibre.",
		"faqQ3":  "L'activité physique aide-t-elle à gérer le poids ?",
		"faqA3":  "Oui, associée à une alimentation équilibrée elle aide à stabiliser le poids.",
		"faqQ4":  "Rester assis longtemps est-il mauvais ?",
		"faqA4":  "Levez-vous toutes les heures : la sédentarité prolongée augmente les risques pour la santé.",
		"faqQ5":  "Qu'est-ce que le protocole IPAQ ?",
		"faqA5":  "L'IPAQ est un questionnaire international qui estime votre activité physique hebdomadaire.",
		"faqQ6":  "Comment est calculé mon score MET ?",
		"faqA6":  "Le protocole additionne les minutes de marche, d'activité modérée et intense, pondérées par leur intensité.",
		"faqQ7":  "Comment rester motivé ?",
		"faqA7":  "Fixez-vous des objectifs simples et suivez votre progression dans l'application.",
		"faqQ8":  "Quel est le meilleur moment pour s'entraîner ?",
		"faqA8":  "Celui que vous pouvez tenir dans la durée : la régularité prime sur l'horaire.",
		"faqQ9":  "Combien d'eau faut-il boire ?",
		"faqA9":  "Environ 1,5 litre par jour, davantage pendant l'effort ou par forte chaleur.",
		"faqQ10": "Que manger avant une séance ?",
		"faqA10": "Un encas léger riche en glucides une à deux heures avant, comme un fruit ou une tartine.",
	},
	Arabic: {
		"home":       "الرئيسية",
		"assessment": "التقييم",
		"program":    "البرنامج",
		"settings":   "الإعدادات",
		"results":    "النتائج",
		"back":       "رجوع",
		"backToHome": "العودة إلى الرئيسية",
		"quit":       "خروج",

		"start":        "ابدأ",
		"pause":        "إيقاف مؤقت",
		"reset":        "إعادة",
		"finish":       "إنهاء",
		"saveAndExit":  "حفظ وخروج",
		"nextExercise": "التمرين التالي",
		"running":      "جارٍ",
		"paused":       "متوقف",
		"ready":        "جاهز",

		"minutes":           "د",
		"exercises":         "تمارين",
		"exercise":          "تمرين",
		"estimatedDuration": "المدة المقدرة",
		"exerciseAdvice":    "حافظ على إيقاع منتظم وتنفس بهدوء.",
		"upNext":            "التالي",
		"completed":         "مكتمل",
		"pending":           "قيد الانتظار",
		"easy":              "سهل",
		"medium":            "متوسط",
		"hard":              "صعب",
		"sessions":          "الحصص",
		"progress":          "التقدم",

		"welcome":          "مرحبا بك في أجي تصورت",
		"healthPartner":    "شريكك الصحي اليومي",
		"improveForm":      "حسّن لياقتك خطوة بخطوة",
		"averageMotricity": "الحركية المتوسطة",
		"keepEfforts":      "واصل مجهوداتك، كل حصة مهمة!",
		"startAssessment":  "ابدأ التقييم",
		"myProgram":        "برنامجي",
		"coachMessage":     "رسالة المدرب",
		"coachAdvice":      "الانتظام أهم من الشدة. ثلاث حصص في الأسبوع تكفي للتقدم.",
		"notAvailable":     "غير متوفر",

		"bilanTitle":           "التقييم الحركي",
		"theTests":             "الاختبارات",
		"testsCompleted":       "الاختبارات المنجزة",
		"averageScore":         "المعدل",
		"seeDetailedResults":   "عرض النتائج المفصلة",
		"instructions":         "التعليمات",
		"followInstructions":   "اتبع تعليمات الفيديو",
		"maintainPosture":      "حافظ على وضعية جيدة",
		"goAtYourPace":         "تقدم حسب إيقاعك",
		"stopIfPain":           "توقف في حالة الألم",
		"video":                "فيديو",
		"scoreObtained":        "النتيجة المحصل عليها",
		"observations":         "ملاحظات",
		"describeObservations": "صف ملاحظاتك...",
		"redo":                 "إعادة",
		"evaluate":             "قيّم",
		"evaluation":           "التقييم",
		"testDone":             "انتهى الاختبار!",

		"hipMobility":             "حركية الورك",
		"hipMobilityDesc":         "اندفاع أمامي لتقييم مدى حركة الورك",
		"balanceStability":        "التوازن والثبات",
		"balanceStabilityDesc":    "الوقوف على رجل واحدة بعينين مفتوحتين ثم مغلقتين",
		"muscleStrength":          "القوة العضلية",
		"muscleStrengthDesc":      "قرفصاء عميقة لقياس قوة الرجلين",
		"spineFlexibility":        "مرونة الظهر",
		"spineFlexibilityDesc":    "ثني الجذع إلى الأمام",
		"coordination":            "التنسيق",
		"coordinationDesc":        "حركات متقاطعة بين الذراعين والرجلين",
		"cardioEndurance":         "التحمل القلبي",
		"cardioEnduranceDesc":     "مشي سريع في المكان لمدة خمس دقائق",
		"proprioception":          "الحس العميق",
		"proprioceptionDesc":      "مسح جسدي وإدراك نقاط الارتكاز",
		"breathingRelaxation":     "التنفس والاسترخاء",
		"breathingRelaxationDesc": "تنفس بطني متحكم فيه",

		"programTitle":      "برنامجي",
		"availableSessions": "الحصص المتاحة",
		"sessionsCompleted": "الحصص المكتملة",
		"sessionTime":       "وقت الحصة",
		"sessionComplete":   "انتهت الحصة، أحسنت!",
		"tips":              "نصائح",
		"tip1":              "قم بالإحماء قبل كل جلسة",
		"tip2":              "احترم إيقاع جسمك",
		"tip3":              "حافظ على رطوبة جسمك بانتظام",
		"tip4":              "تدرب 3 مرات في الأسبوع",

		"morningMobility":         "حركية الصباح",
		"balanceStabilitySession": "التوازن والثبات",
		"muscleStrengthSession":   "تقوية العضلات",
		"warmup":                  "إحماء",
		"hipMobilityEx":           "حركية الوركين",
		"spineFlexibilityEx":      "مرونة العمود الفقري",
		"breathingEx":             "تنفس",
		"staticBalance":           "توازن ثابت",
		"lineWalking":             "المشي على خط",
		"proprioceptionEx":        "الحس العميق",
		"coolDown":                "تهدئة",
		"upperBodyStrength":       "تقوية الجزء العلوي",
		"lowerBodyStrength":       "تقوية الجزء السفلي",
		"stretching":              "تمدد",

		"language":           "اللغة",
		"languageName":       "العربية",
		"switchLanguage":     "تغيير اللغة",
		"logout":             "تسجيل الخروج",
		"login":              "تسجيل الدخول",
		"register":           "إنشاء حساب",
		"email":              "البريد الإلكتروني",
		"password":           "كلمة المرور",
		"loginPrompt":        "سجل الدخول لمتابعة تقدمك",
		"invalidCredentials": "البريد الإلكتروني أو كلمة المرور غير صحيحة",
		"signedInAs":         "متصل باسم",
		"onboardingTitle":    "مستوى نشاطك",
		"metScorePrompt":     "نقاط MET الأسبوعية (استبيان IPAQ)",

		"resultsTitle": "النتائج المفصلة",
		"noResults":    "لا توجد نتائج محفوظة حاليا",
		"observation":  "ملاحظة",

		"faqTitle":            "الأسئلة الشائعة",
		"faqSubtitle":         "اعثر على إجابة بسرعة",
		"searchQuestion":      "ابحث عن سؤال...",
		"allCategories":       "الكل",
		"noQuestionsFound":    "لم يتم العثور على أي سؤال",
		"tryAnotherSearch":    "جرب بحثا آخر",
		"questionsFound":      "سؤال",
		"catPhysicalActivity": "النشاط البدني",
		"catHealth":           "الصحة",
		"catIPAQ":             "IPAQ",
		"catAdvice":           "نصائح",
		"catNutrition":        "التغذية",

		"faqQ1":  "كم من الوقت يجب أن أتحرك يوميا؟",
		"faqA1":  "استهدف 30 دقيقة على الأقل من النشاط المعتدل يوميا، مرة واحدة أو على فترات.",
		"faqQ2":  "هل يجب القيام بتمارين التقوية؟",
		"faqA2":  "حصتان من التقوية في الأسبوع تساعدان على الحفاظ على القوة والتوازن.",
		"faqQ3":  "هل يساعد النشاط البدني على التحكم في الوزن؟",
		"faqA3":  "نعم، مع تغذية متوازنة يساعد على استقرار الوزن.",
		"faqQ4":  "هل الجلوس لفترة طويلة مضر؟",
		"faqA4":  "قف كل ساعة: الخمول الطويل يزيد من المخاطر الصحية.",
		"faqQ5":  "ما هو بروتوكول IPAQ؟",
		"faqA5":  "IPAQ استبيان دولي يقدر نشاطك البدني الأسبوعي.",
		"faqQ6":  "كيف يتم حساب نقاط MET؟",
		"faqA6":  "يجمع البروتوكول دقائق المشي والنشاط المعتدل والمكثف موزونة حسب شدتها.",
		"faqQ7":  "كيف أحافظ على حماسي؟",
		"faqA7":  "ضع أهدافا بسيطة وتابع تقدمك في التطبيق.",
		"faqQ8":  "ما هو أفضل وقت للتمرن؟",
		"faqA8":  "الوقت الذي يمكنك الالتزام به: الانتظام أهم من التوقيت.",
		"faqQ9":  "كم من الماء يجب أن أشرب؟",
		"faqA9":  "حوالي لتر ونصف يوميا، وأكثر أثناء المجهود أو في الحر الشديد.",
		"faqQ10": "ماذا آكل قبل الحصة؟",
		"faqA10": "وجبة خفيفة غنية بالسكريات قبل ساعة أو ساعتين، مثل فاكهة أو خبز.",
	},
}
