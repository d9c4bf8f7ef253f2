package dataset

var surveyInfo = Survey{
	Name:       "National Family Health Survey (NFHS)",
	Edition:    "NFHS-5",
	Year:       2024,
	Population: "Children Under 5 Years",
}

var stateRecords = []StateRecord{
	{State: "Bihar", Stunting: 42.9, Wasting: 22.9, Underweight: 41.0},
	{State: "Uttar Pradesh", Stunting: 39.7, Wasting: 17.9, Underweight: 39.5},
	{State: "Jharkhand", Stunting: 39.6, Wasting: 22.6, Underweight: 40.5},
	{State: "Madhya Pradesh", Stunting: 35.8, Wasting: 19.2, Underweight: 36.0},
	{State: "Meghalaya", Stunting: 46.5, Wasting: 15.3, Underweight: 41.8},
	{State: "Gujarat", Stunting: 39.0, Wasting: 26.4, Underweight: 39.7},
	{State: "Kerala", Stunting: 19.7, Wasting: 15.7, Underweight: 16.1},
	{State: "Punjab", Stunting: 25.7, Wasting: 15.6, Underweight: 21.6},
}

var nationalRecords = []NationalRecord{
	{Category: "Stunting", Value: 35.5, Color: "#ef4444"},
	{Category: "Wasting", Value: 19.3, Color: "#f59e0b"},
	{Category: "Underweight", Value: 32.1, Color: "#8b5cf6"},
}

var stuntingFactors = []StuntingFactor{
	{Factor: "Poor Nutrition", Impact: 85, Category: CategoryDietary},
	{Factor: "Inadequate Sanitation", Impact: 72, Category: CategoryEnvironmental},
	{Factor: "Lack of Clean Water", Impact: 68, Category: CategoryEnvironmental},
	{Factor: "Low Birth Weight", Impact: 78, Category: CategoryHealth},
	{Factor: "Maternal Malnutrition", Impact: 80, Category: CategoryHealth},
	{Factor: "Infections & Diseases", Impact: 70, Category: CategoryHealth},
	{Factor: "Poverty", Impact: 75, Category: CategorySocioeconomic},
	{Factor: "Lack of Education", Impact: 65, Category: CategorySocioeconomic},
}

// Ordered by age; the donut and ranked list rely on this order.
var ageGroupRecords = []AgeGroupRecord{
	{Age: "0-6 months", Stunting: 15.2, Wasting: 20.5, Underweight: 18.3},
	{Age: "6-12 months", Stunting: 28.6, Wasting: 21.4, Underweight: 26.8},
	{Age: "12-24 months", Stunting: 42.3, Wasting: 19.8, Underweight: 36.5},
	{Age: "24-36 months", Stunting: 45.7, Wasting: 17.2, Underweight: 38.2},
	{Age: "36-48 months", Stunting: 42.1, Wasting: 16.5, Underweight: 35.9},
	{Age: "48-60 months", Stunting: 38.4, Wasting: 15.8, Underweight: 32.7},
}

var radarFactors = []RadarFactor{
	{Subject: "Nutrition", Value: 85},
	{Subject: "Sanitation", Value: 72},
	{Subject: "Healthcare", Value: 76},
	{Subject: "Education", Value: 65},
	{Subject: "Water Access", Value: 68},
	{Subject: "Income", Value: 75},
}

var highlights = []Highlight{
	{
		Icon:  "🎯",
		Title: "Highest Burden States",
		Text:  "Meghalaya (46.5%), Bihar (42.9%), and Jharkhand (39.6%) show the highest stunting rates, requiring immediate intervention.",
	},
	{
		Icon:  "👶",
		Title: "Critical Age Group",
		Text:  "Children aged 12-36 months show peak malnutrition rates, highlighting the importance of the first 1000 days.",
	},
	{
		Icon:  "🔑",
		Title: "Primary Drivers",
		Text:  "Poor nutrition (85%), maternal malnutrition (80%), and low birth weight (78%) are the strongest contributors to stunting.",
	},
	{
		Icon:  "✅",
		Title: "Success Stories",
		Text:  "Kerala (19.7%) and Punjab (25.7%) demonstrate that focused interventions can significantly reduce malnutrition.",
	},
}

// SurveyInfo returns the survey metadata shown in the header.
func SurveyInfo() Survey { return surveyInfo }

// States returns the state-wise indicators in display order.
func States() []StateRecord { return append([]StateRecord(nil), stateRecords...) }

// National returns the national-average summary figures.
func National() []NationalRecord { return append([]NationalRecord(nil), nationalRecords...) }

// Factors returns the stunting contributing factors in declaration order.
func Factors() []StuntingFactor { return append([]StuntingFactor(nil), stuntingFactors...) }

// AgeGroups returns the age-wise indicators ordered by age.
func AgeGroups() []AgeGroupRecord { return append([]AgeGroupRecord(nil), ageGroupRecords...) }

// Radar returns the radar chart factor scores.
func Radar() []RadarFactor { return append([]RadarFactor(nil), radarFactors...) }

// Highlights returns the static key-insight entries.
func Highlights() []Highlight { return append([]Highlight(nil), highlights...) }

// Snapshot bundles every table, used for JSON and spreadsheet export.
type Snapshot struct {
	Survey     Survey           `json:"survey"`
	States     []StateRecord    `json:"states"`
	National   []NationalRecord `json:"national"`
	Factors    []StuntingFactor `json:"factors"`
	AgeGroups  []AgeGroupRecord `json:"ageGroups"`
	Radar      []RadarFactor    `json:"radar"`
	Highlights []Highlight      `json:"highlights"`
}

// Load returns a Snapshot of the full dataset.
func Load() Snapshot {
	return Snapshot{
		Survey:     SurveyInfo(),
		States:     States(),
		National:   National(),
		Factors:    Factors(),
		AgeGroups:  AgeGroups(),
		Radar:      Radar(),
		Highlights: Highlights(),
	}
}
