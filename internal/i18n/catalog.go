package i18n

// In-code catalogs keyed the way the web client expects. On-disk catalog
// files are intentionally not used; the API only needs these messages.

var messages = map[string]map[string]string{
	"en": {
		"auth.noToken":            "Authentication token is required",
		"auth.invalidToken":       "Invalid or expired token",
		"auth.invalidCredentials": "Invalid credentials",
		"auth.emailTaken":         "An account with this email already exists",
		"auth.loggedOut":          "Logged out successfully",
		"auth.languageUpdated":    "Language updated",
		"error.notFound":          "Resource not found",
		"error.forbidden":         "You do not have access to this resource",
		"error.tooManyRequests":   "Too many requests, please try again later",
		"error.internal":          "Something went wrong, please try again",
		"export.eventPlan":        "Event Plan",
		"export.budget":           "Budget",
		"export.checklist":        "Checklist",
		"export.timeline":         "Timeline",
		"export.venue":            "Venue",
		"export.date":             "Date",
		"export.guests":           "Guests",
		"export.category":         "Category",
		"export.item":             "Item",
		"export.estimated":        "Estimated",
		"export.actual":           "Actual",
		"export.variance":         "Variance",
		"export.total":            "Total",
		"export.task":             "Task",
		"export.done":             "Done",
		"export.dueDate":          "Due date",
		"export.startTime":        "Start",
		"export.endTime":          "End",
		"export.responsible":      "Responsible",
		"export.address":          "Address",
		"export.capacity":         "Capacity",
		"export.contact":          "Contact",
		"export.yes":              "Yes",
		"export.no":               "No",
	},
	"fr": {
		"auth.noToken":            "Un jeton d'authentification est requis",
		"auth.invalidToken":       "Jeton invalide ou expiré",
		"auth.invalidCredentials": "Identifiants invalides",
		"auth.emailTaken":         "Un compte avec cet e-mail existe déjà",
		"auth.loggedOut":          "Déconnexion réussie",
		"auth.languageUpdated":    "Langue mise à jour",
		"error.notFound":          "Ressource introuvable",
		"error.forbidden":         "Vous n'avez pas accès à cette ressource",
		"error.tooManyRequests":   "Trop de requêtes, veuillez réessayer plus tard",
		"error.internal":          "Une erreur est survenue, veuillez réessayer",
		"export.eventPlan":        "Plan de l'événement",
		"export.budget":           "Budget",
		"export.checklist":        "Liste de tâches",
		"export.timeline":         "Programme",
		"export.venue":            "Lieu",
		"export.date":             "Date",
		"export.guests":           "Invités",
		"export.category":         "Catégorie",
		"export.item":             "Poste",
		"export.estimated":        "Estimé",
		"export.actual":           "Réel",
		"export.variance":         "Écart",
		"export.total":            "Total",
		"export.task":             "Tâche",
		"export.done":             "Fait",
		"export.dueDate":          "Échéance",
		"export.startTime":        "Début",
		"export.endTime":          "Fin",
		"export.responsible":      "Responsable",
		"export.address":          "Adresse",
		"export.capacity":         "Capacité",
		"export.contact":          "Contact",
		"export.yes":              "Oui",
		"export.no":               "Non",
	},
	"de": {
		"auth.noToken":            "Ein Authentifizierungstoken ist erforderlich",
		"auth.invalidToken":       "Ungültiges oder abgelaufenes Token",
		"auth.invalidCredentials": "Ungültige Anmeldedaten",
		"auth.emailTaken":         "Ein Konto mit dieser E-Mail existiert bereits",
		"auth.loggedOut":          "Erfolgreich abgemeldet",
		"auth.languageUpdated":    "Sprache aktualisiert",
		"error.notFound":          "Ressource nicht gefunden",
		"error.forbidden":         "Sie haben keinen Zugriff auf diese Ressource",
		"error.tooManyRequests":   "Zu viele Anfragen, bitte versuchen Sie es später erneut",
		"error.internal":          "Etwas ist schiefgelaufen, bitte erneut versuchen",
		"export.eventPlan":        "Veranstaltungsplan",
		"export.budget":           "Budget",
		"export.checklist":        "Checkliste",
		"export.timeline":         "Ablaufplan",
		"export.venue":            "Veranstaltungsort",
		"export.date":             "Datum",
		"export.guests":           "Gäste",
		"export.category":         "Kategorie",
		"export.item":             "Posten",
		"export.estimated":        "Geschätzt",
		"export.actual":           "Tatsächlich",
		"export.variance":         "Abweichung",
		"export.total":            "Gesamt",
		"export.task":             "Aufgabe",
		"export.done":             "Erledigt",
		"export.dueDate":          "Fällig am",
		"export.startTime":        "Beginn",
		"export.endTime":          "Ende",
		"export.responsible":      "Verantwortlich",
		"export.address":          "Adresse",
		"export.capacity":         "Kapazität",
		"export.contact":          "Kontakt",
		"export.yes":              "Ja",
		"export.no":               "Nein",
	},
}

var lists = map[string]map[string][]string{
	"en": {
		"templates.wedding.checklist": {
			"Set the wedding date",
			"Book the ceremony venue",
			"Book the reception venue",
			"Send save-the-dates",
			"Choose a caterer and tasting menu",
			"Book photographer and videographer",
			"Order wedding attire",
			"Arrange flowers and decoration",
			"Plan the seating chart",
			"Book music or a DJ",
			"Order the wedding cake",
			"Confirm final guest count",
		},
		"templates.birthday.checklist": {
			"Pick a date and time",
			"Choose a theme",
			"Book the venue",
			"Send invitations",
			"Order the cake",
			"Plan food and drinks",
			"Organize games and entertainment",
			"Prepare decorations",
			"Prepare party favors",
		},
		"templates.company.checklist": {
			"Define goals and budget",
			"Pick a date",
			"Book the venue",
			"Send invitations to staff",
			"Arrange catering",
			"Book speakers or entertainment",
			"Organize transport and parking",
			"Prepare the agenda",
			"Arrange AV equipment",
			"Collect feedback after the event",
		},
		"categories.defaults": {
			"Venue", "Food", "Drinks", "Decoration", "Entertainment",
			"Photography", "Flowers", "Transportation", "Attire",
			"Stationery", "Staff", "Extras",
		},
	},
	"fr": {
		"templates.wedding.checklist": {
			"Fixer la date du mariage",
			"Réserver le lieu de la cérémonie",
			"Réserver le lieu de la réception",
			"Envoyer les save-the-dates",
			"Choisir un traiteur et le menu",
			"Réserver photographe et vidéaste",
			"Commander les tenues",
			"Organiser fleurs et décoration",
			"Préparer le plan de table",
			"Réserver la musique ou un DJ",
			"Commander le gâteau de mariage",
			"Confirmer le nombre final d'invités",
		},
		"templates.birthday.checklist": {
			"Choisir une date et une heure",
			"Choisir un thème",
			"Réserver le lieu",
			"Envoyer les invitations",
			"Commander le gâteau",
			"Prévoir nourriture et boissons",
			"Organiser jeux et animations",
			"Préparer la décoration",
			"Préparer les cadeaux d'invités",
		},
		"templates.company.checklist": {
			"Définir objectifs et budget",
			"Choisir une date",
			"Réserver le lieu",
			"Envoyer les invitations au personnel",
			"Organiser le traiteur",
			"Réserver intervenants ou animations",
			"Organiser transport et stationnement",
			"Préparer l'ordre du jour",
			"Prévoir le matériel audiovisuel",
			"Recueillir les retours après l'événement",
		},
		"categories.defaults": {
			"Lieu", "Nourriture", "Boissons", "Décoration", "Animation",
			"Photographie", "Fleurs", "Transport", "Tenues",
			"Papeterie", "Personnel", "Divers",
		},
	},
	"de": {
		"templates.wedding.checklist": {
			"Hochzeitsdatum festlegen",
			"Ort für die Trauung buchen",
			"Ort für die Feier buchen",
			"Save-the-Dates versenden",
			"Caterer und Menü auswählen",
			"Fotograf und Videograf buchen",
			"Hochzeitskleidung bestellen",
			"Blumen und Dekoration organisieren",
			"Sitzordnung planen",
			"Musik oder DJ buchen",
			"Hochzeitstorte bestellen",
			"Endgültige Gästezahl bestätigen",
		},
		"templates.birthday.checklist": {
			"Datum und Uhrzeit festlegen",
			"Motto auswählen",
			"Ort buchen",
			"Einladungen versenden",
			"Torte bestellen",
			"Essen und Getränke planen",
			"Spiele und Unterhaltung organisieren",
			"Dekoration vorbereiten",
			"Gastgeschenke vorbereiten",
		},
		"templates.company.checklist": {
			"Ziele und Budget festlegen",
			"Datum festlegen",
			"Ort buchen",
			"Einladungen an Mitarbeiter versenden",
			"Catering organisieren",
			"Redner oder Unterhaltung buchen",
			"Transport und Parkplätze organisieren",
			"Agenda vorbereiten",
			"AV-Technik organisieren",
			"Feedback nach der Veranstaltung einholen",
		},
		"categories.defaults": {
			"Veranstaltungsort", "Essen", "Getränke", "Dekoration",
			"Unterhaltung", "Fotografie", "Blumen", "Transport",
			"Kleidung", "Papeterie", "Personal", "Sonstiges",
		},
	},
}
