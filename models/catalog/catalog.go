// Package catalog holds the versioned filter-option tables backing the
// metadata endpoints and filter validation. These lists are business
// taxonomy, kept as data so taxonomy changes never touch logic.
package catalog

// Version identifies the taxonomy revision served by the metadata endpoints.
const Version = "2025-08"

var DiningOptions = map[string][]string{
	"type": {"veg", "non-veg"},
	"cuisines": {
		"Italian", "Chinese", "North Indian", "Mexican", "Thai", "Japanese",
		"Continental", "French", "Korean", "Mediterranean",
	},
}

var MovieOptions = map[string][]string{
	"genre": {
		"Action", "Adventure", "Animation", "Comedy", "Crime", "Drama", "Family",
		"Fantasy", "Historical", "Horror", "Mystery", "Psychological Thriller",
		"Romance", "Sci-Fi", "Sport", "Thriller", "War",
	},
	"language": {"Hindi", "English"},
	"format":   {"2D", "3D", "4DX-3D", "IMAX 2D", "4DX-2D", "ICE 2D"},
	"cast": {
		"Shah Rukh Khan", "Alia Bhatt", "Ranbir Kapoor", "Deepika Padukone",
		"Rajkummar Rao", "Ayushmann Khurrana", "Vicky Kaushal", "Katrina Kaif",
	},
}

var EventOptions = map[string][]string{
	"type": {
		"Acoustic", "Art & Craft Workshops", "Attractions", "Beverage Tastings",
		"Bollywood Films", "Bollywood Music", "Bollywood Night", "Brunch", "Buffet",
		"Business Conferences & Talks", "Carnivals", "Celebrations", "Classical Music",
		"Clubbing", "Cocktails", "Comedy", "Comedy Open Mics", "Comical Plays",
		"Community Dining", "Community Meetups", "Concerts", "Conferences & Talks",
		"Cricket Matches", "Cricket Screenings", "DJ Nights", "Dance", "Dating",
		"Devotional Music", "Dinner", "Dramatic Plays", "EDM Music",
		"Education Conferences & Talks", "Entertainment & Award Shows", "Expos",
		"Fandom Fests", "Fests & Fairs", "Fitness & Wellness Fests", "Fitness Events",
		"Folk Music", "Food & Drinks", "Football Screenings", "Game Zones",
		"Gourmet Experiences", "Hip Hop Music", "Holi", "ICC", "Iconic Landmarks",
		"Indian Classical Dance", "Indie Music", "Industry Networking",
		"Instrumental Music", "Interest Based Communities", "Interest Based Dating",
		"Jams", "Jazz Music", "Karaoke Nights", "Kids", "Kids Festivals", "Kids Play",
		"Literary", "Literary Open Mics", "Live Gigs", "Lunch",
		"Marketing Conferences & Talks", "Motorsport Matches", "Movie Screenings",
		"Music", "Music Conferences & Talks", "Music Festivals", "Music Open Mics",
		"Nightlife", "ODI matches", "Open Air Screening", "Open Mics",
		"Open Mics & Jams", "Parties", "Performances", "Picnics", "Play", "Poetry",
		"Poetry Open Mics", "Pop Culture Fairs", "Pop Music", "Rave", "Roast",
		"Rock Music", "Singles Mixers", "Social Mixers", "Speed Dating", "Sports",
		"Standup", "Storytelling", "Storytelling Open Mics", "Sufi Music", "Sundowner",
		"TV Screenings", "Tech Conferences & Talks", "Techno", "Tennis Matches",
		"Theatre", "Trade Shows", "Tribute Shows", "Valentine's Day", "Workshops",
		"World Cup", "Wrestling Matches",
	},
	"venue": {"indoor", "outdoor", "both"},
}

var ActivityOptions = map[string][]string{
	"type": {
		"Bowling", "Acting Workshops", "Adventure", "Adventure Parks", "Aerial Tours",
		"Arcades", "Art & Craft Workshops", "Baking", "Bike Riding",
		"Blood on the Clocktower", "Board Games & Puzzles", "Bollywood Dance",
		"Business Conferences & Talks", "Calligraphy", "Celebrations", "Ceramics",
		"City Tours", "Clay Modelling", "Coffee Brewing", "Comedy",
		"Community Meetups", "Community Runs", "Conferences & Talks", "Cooking",
		"Cricket", "Culinary Workshops", "DIY Workshops", "Dance Workshops", "Dating",
		"Day Trips", "Entertainment Parks", "Escape Rooms", "Esports", "Farm Outings",
		"Fashion & Beauty Workshops", "Fests & Fairs", "Finance Workshops",
		"Fitness Activities", "Game Zones", "Games & Quizzes", "Go Karting", "Healing",
		"Historical Tours", "History Museums", "Home Decor", "Horse Riding",
		"Illusion Museums", "Improv", "Interest Based Communities",
		"Interest Based Dating", "Kids", "Kids Festivals", "Kids Play",
		"Kids Theme Parks", "Laser Tag", "Meditation", "Mountain Treks", "Museums",
		"Music", "Mystery Rooms", "NYE", "Nightlife", "Paintball", "Painting",
		"Paragliding", "Parties", "Pet Activities", "Pet Playdates",
		"Photography Workshops", "Play Areas", "Play Sports", "Pottery Workshops",
		"Public Speaking Workshops", "Rage Rooms", "Resin Art", "Rock Climbing",
		"Sip & Paint", "Snow Parks", "Social Mixers", "Theme Parks", "Tours",
		"Trampoline Parks", "Travel", "Treasure Hunts", "Treks",
		"Trivia Nights & Quizzes", "VR Rooms", "Valentine's Day", "Watercolours",
		"Weekend Getaways", "Wellness Workshops", "Wheel Throwing", "Workshops",
	},
	"venue":     {"indoor", "outdoor"},
	"intensity": {"low", "medium", "high"},
}

var PlayOptions = map[string][]string{
	"type": {
		"Badminton", "Basketball", "Box Cricket", "Cricket", "Cricket Nets",
		"Football", "Padel", "Pickleball", "Table Tennis", "Tennis", "Turf Football",
	},
	"venue":     {"indoor", "outdoor"},
	"intensity": {"low", "medium", "high"},
}

// AmenityFilters and CrowdTolerance are common across every category.
var AmenityFilters = []string{"wifi", "washroom", "wheelchair", "parking"}
var CrowdTolerance = []string{"low", "medium", "high"}

// ByCategory maps a wire category name to its option table.
var ByCategory = map[string]map[string][]string{
	"dinings":    DiningOptions,
	"movies":     MovieOptions,
	"events":     EventOptions,
	"activities": ActivityOptions,
	"plays":      PlayOptions,
}
