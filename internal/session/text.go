package session

// AppTitle is the name shown in the banner and farewell.
const AppTitle = "Fitness Tracker CLI"

// Prompts.
const (
	PromptChoice     = "\nEnter your choice: "
	PromptCustomType = "Please type the name of your workout: "
	PromptDate       = "Enter the date in YYYY-MM-DD format (e.g., 2024-01-28): "
	PromptDuration   = "Enter workout duration (minutes): "
	PromptNotes      = "Optional notes: "
)

// Messages.
const (
	MsgInvalidHome      = "Invalid option. Please choose a valid option (1-6)."
	MsgInvalidTips      = "Invalid option. Please choose 1 or 2."
	MsgReturningHome    = "Invalid option. Returning to Home Screen..."
	MsgInvalidDate      = "Invalid date format. Please enter the date in YYYY-MM-DD format."
	MsgRedirectingHome  = "[Redirecting to Home Screen...]"
	MsgNoHistory        = "No workout history found."
	MsgNoWorkouts       = "No workouts logged yet."
	MsgExitConfirm      = "Are you sure you want to exit?"
	MsgExitCaution      = "Caution: Exiting now could result in losing unsaved progress or requiring a program restart."
	MsgFarewell         = "Thank you for using " + AppTitle + "! Goodbye!"
	MsgLoggedPrefix     = "You logged: "
	MsgSaveErrorPrefix  = "Error saving workout to "
	MsgReadErrorPrefix  = "Error reading workout history: "
	MsgWorkoutTypeIntro = "Enter workout type (e.g., Running, Yoga):"
)

// homeFeatures are advertised on the home screen. Goals and help are listed
// but not implemented; options 3 and 4 fall through to MsgInvalidHome.
var homeFeatures = []string{
	"Log your workouts and track your progress.",
	"View and filter your workout history.",
	"Set and manage fitness goals.",
	"Access helpful tips and commands.",
	"Get motivational fitness tips to stay on track.",
}

var homeOptions = []string{
	"Log Workout",
	"View Workout History",
	"Set Fitness Goals",
	"Help",
	"Fitness Tips",
	"Exit",
}

// Tips are the basic tips on the fitness tips screen.
var Tips = []string{
	"Consistency is key. Try to log your workouts daily!",
	"Mix cardio and strength training for a balanced routine.",
	"Stretching improves flexibility and prevents injury.",
}

// TipCategory is a titled group of tips on the additional tips screen.
type TipCategory struct {
	Name string
	Tips []string
}

// MoreTips are the categorized tips on the additional tips screen.
var MoreTips = []TipCategory{
	{
		Name: "Cardio Tips",
		Tips: []string{
			"Start with a warm-up to gradually increase your heart rate.",
			"Incorporate intervals to boost calorie burn and endurance.",
		},
	},
	{
		Name: "Strength Training Tips",
		Tips: []string{
			"Focus on form, not weight, to avoid injuries.",
			"Rest between sets to maximize performance.",
		},
	},
	{
		Name: "General Wellness Tips",
		Tips: []string{
			"Drink water throughout the day, not just during workouts.",
			"Aim for at least 7-8 hours of sleep to allow recovery.",
		},
	},
}
