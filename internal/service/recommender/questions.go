package recommender

// Question is one item of the fixed questionnaire. The set is immutable
// and shared across all sessions.
type Question struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Section string `json:"section"`
	Area    string `json:"area,omitempty"`  // section C only
	Keyed   string `json:"keyed,omitempty"` // plus/minus; all items are currently plus-keyed
}

// ChoiceOption is one Likert answer option.
type ChoiceOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Choices holds the Likert option sets by keying. Minus-keyed items would
// present the scale reversed; no current question uses it.
var Choices = map[string][]ChoiceOption{
	"plus": {
		{Value: 1, Label: "Strongly disagree"},
		{Value: 2, Label: "Disagree"},
		{Value: 3, Label: "Neutral"},
		{Value: 4, Label: "Agree"},
		{Value: 5, Label: "Strongly agree"},
	},
	"minus": {
		{Value: 5, Label: "Strongly disagree"},
		{Value: 4, Label: "Disagree"},
		{Value: 3, Label: "Neutral"},
		{Value: 2, Label: "Agree"},
		{Value: 1, Label: "Strongly agree"},
	},
}

// Questions is the full questionnaire: section A drives the thesis type,
// B the working style, C the per-area interest and D the skill boost.
var Questions = []Question{
	// Section A: thesis type
	{ID: "q01", Text: "I enjoy reading academic papers or exploring theoretical concepts.", Section: "A"},
	{ID: "q02", Text: "I prefer experimenting with different algorithms and analyzing results.", Section: "A"},
	{ID: "q03", Text: "I enjoy building complete systems, apps, or functional prototypes.", Section: "A"},
	{ID: "q04", Text: "I am motivated by solving real-world problems through implementation.", Section: "A"},
	{ID: "q05", Text: "I feel comfortable working with datasets, experiments, and analytical reports.", Section: "A"},
	{ID: "q06", Text: "I enjoy designing UI, APIs, architectures, or deployable software.", Section: "A"},

	// Section B: working style
	{ID: "q07", Text: "I prefer working independently with minimal supervision.", Section: "B"},
	{ID: "q08", Text: "I enjoy collaborating closely with teammates.", Section: "B"},
	{ID: "q09", Text: "I enjoy structured work with clear steps and requirements.", Section: "B"},
	{ID: "q10", Text: "I prefer flexible projects where I can explore ideas freely.", Section: "B"},
	{ID: "q11", Text: "I work well under time pressure and deadlines.", Section: "B"},
	{ID: "q12", Text: "I enjoy long, deep-focus tasks without interruptions.", Section: "B"},
	{ID: "q13", Text: "I prefer problem-solving through coding and experimentation.", Section: "B"},
	{ID: "q14", Text: "I prefer analyzing, planning, or architecting before coding anything.", Section: "B"},

	// Section C: interests, one per area
	{ID: "q15", Text: "I enjoy training models, experimenting with algorithms, or solving predictive problems.", Section: "C", Area: AreaAI},
	{ID: "q16", Text: "I enjoy exploring datasets, creating visualizations, or optimizing data pipelines.", Section: "C", Area: AreaData},
	{ID: "q17", Text: "I find security vulnerabilities, penetration testing, or cryptography interesting.", Section: "C", Area: AreaSec},
	{ID: "q18", Text: "I enjoy building interfaces, backend APIs, or fullstack web applications.", Section: "C", Area: AreaWeb},
	{ID: "q19", Text: "I like building apps for Android/iOS or using cross-platform frameworks.", Section: "C", Area: AreaMobile},
	{ID: "q20", Text: "I enjoy deploying, automating, and scaling systems on cloud platforms.", Section: "C", Area: AreaCloud},
	{ID: "q21", Text: "I like configuring networks, troubleshooting servers, or optimizing connectivity.", Section: "C", Area: AreaNet},
	{ID: "q22", Text: "I like working with hardware, sensors, and real-time systems.", Section: "C", Area: AreaIoT},
	{ID: "q23", Text: "I'm curious about smart contracts, dApps, or distributed ledger systems.", Section: "C", Area: AreaWeb3},
	{ID: "q24", Text: "I enjoy designing user interfaces, conducting usability testing, or improving user experience.", Section: "C", Area: AreaUX},
	{ID: "q25", Text: "I like planning software architectures, managing tasks, and ensuring system quality.", Section: "C", Area: AreaPM},

	// Section D: skills
	{ID: "q26", Text: "My math and statistics foundation is strong enough for AI/Data research.", Section: "D"},
	{ID: "q27", Text: "I am comfortable coding medium-to-large software systems.", Section: "D"},
	{ID: "q28", Text: "I can learn new programming frameworks quickly.", Section: "D"},
	{ID: "q29", Text: "I can handle complex debugging or system troubleshooting.", Section: "D"},
	{ID: "q30", Text: "I enjoy writing documentation and technical reports.", Section: "D"},
}
