package db

import (
	"database/sql"
	"log"
)

type seedDestination struct {
	Name        string
	State       string
	Description string
	ImageURL    string
	Attractions string
}

type seedPackage struct {
	DestinationID int64
	Title         string
	Duration      string
	Price         float64
	Description   string
	Inclusions    string
	Highlights    string
}

var seedDestinations = []seedDestination{
	{"Valparai", "Tamil Nadu", "A scenic hill station known for tea estates and wildlife", "/images/valparai.jpg", "Tea estates, Athirappilly Falls, Aliyar Dam"},
	{"Ooty", "Tamil Nadu", "The Queen of Hill Stations with beautiful botanical gardens", "/images/ooty.jpg", "Botanical Gardens, Ooty Lake, Nilgiri Mountain Railway"},
	{"Yercaud", "Tamil Nadu", "A peaceful hill station with coffee plantations", "/images/yercaud.jpg", "Yercaud Lake, Kiliyur Falls, Shevaroy Temple"},
	{"Kanyakumari", "Tamil Nadu", "The southernmost tip of India with stunning sunsets", "/images/kanyakumari.jpg", "Vivekananda Rock, Thiruvalluvar Statue, Sunrise & Sunset"},
	{"Rameshwaram", "Tamil Nadu", "Sacred pilgrimage site with beautiful beaches", "/images/rameshwaram.jpg", "Ramanathaswamy Temple, Pamban Bridge, Dhanushkodi"},
	{"Varkala", "Kerala", "Beach town with dramatic cliffs and natural springs", "/images/varkala.jpg", "Varkala Beach, Cliff views, Janardhana Temple"},
	{"Wayanad", "Kerala", "Lush green paradise with wildlife and waterfalls", "/images/wayanad.jpg", "Chembra Peak, Edakkal Caves, Soochipara Falls"},
	{"Munnar", "Kerala", "Famous for tea gardens and misty mountains", "/images/munnar.jpg", "Tea plantations, Eravikulam National Park, Mattupetty Dam"},
	{"Chikkamagaluru", "Karnataka", "Coffee land with serene hills and temples", "/images/chikkamagaluru.jpg", "Mullayanagiri Peak, Coffee estates, Baba Budangiri"},
	{"Coorg", "Karnataka", "Scotland of India with coffee plantations", "/images/coorg.jpg", "Abbey Falls, Raja's Seat, Coffee plantations"},
	{"Mysore", "Karnataka", "Royal city with magnificent palaces and gardens", "/images/mysore.jpg", "Mysore Palace, Chamundi Hills, Brindavan Gardens"},
}

var seedPackages = []seedPackage{
	{1, "Valparai Tea Estate Tour", "2 Days / 1 Night", 4999, "Explore lush tea gardens and wildlife", "Accommodation, Breakfast, Transport", "Tea estate visit, Wildlife spotting, Scenic drives"},
	{1, "Valparai Nature Retreat", "3 Days / 2 Nights", 7999, "Extended nature experience in Valparai", "Accommodation, All meals, Transport, Guide", "Tea plantation tour, Athirappilly Falls, Nature walks"},
	{2, "Ooty Hill Station Getaway", "2 Days / 1 Night", 5499, "Classic Ooty experience with gardens and lake", "Accommodation, Breakfast, Sightseeing", "Botanical Garden, Ooty Lake, Doddabetta Peak"},
	{2, "Ooty Heritage Tour", "3 Days / 2 Nights", 8999, "Experience Ooty's colonial charm", "Accommodation, All meals, Toy train ride, Transport", "Nilgiri Railway, Tea factory, Rose garden"},
	{3, "Yercaud Coffee Trails", "2 Days / 1 Night", 4499, "Peaceful retreat in coffee country", "Accommodation, Breakfast, Transport", "Coffee plantation, Yercaud Lake, Viewpoints"},
	{4, "Kanyakumari Sunrise Special", "2 Days / 1 Night", 3999, "Witness spectacular sunrise at land's end", "Accommodation, Breakfast, Ferry ticket", "Vivekananda Rock, Thiruvalluvar Statue, Beach"},
	{5, "Rameshwaram Pilgrimage", "2 Days / 1 Night", 4299, "Spiritual journey to sacred Rameshwaram", "Accommodation, Breakfast, Temple visit", "Ramanathaswamy Temple, Dhanushkodi, Pamban Bridge"},
	{6, "Varkala Beach Relaxation", "3 Days / 2 Nights", 6999, "Unwind on pristine cliffs and beaches", "Accommodation, Breakfast, Ayurvedic massage", "Beach activities, Cliff walks, Local markets"},
	{7, "Wayanad Wildlife Adventure", "3 Days / 2 Nights", 9499, "Explore forests, caves and waterfalls", "Accommodation, All meals, Safari, Guide", "Wildlife safari, Edakkal Caves, Chembra Peak trek"},
	{8, "Munnar Tea Gardens", "2 Days / 1 Night", 5999, "Immerse in tea country beauty", "Accommodation, Breakfast, Tea factory tour", "Tea plantations, Eravikulam Park, Mattupetty"},
	{8, "Munnar Honeymoon Package", "3 Days / 2 Nights", 10999, "Romantic getaway in misty hills", "Luxury stay, All meals, Candlelight dinner, Transfers", "Tea gardens, Scenic spots, Private tours"},
	{9, "Chikkamagaluru Coffee Experience", "2 Days / 1 Night", 5299, "Discover coffee culture and hills", "Accommodation, Breakfast, Coffee tour", "Coffee plantation, Mullayanagiri, Hirekolale Lake"},
	{10, "Coorg Nature Escape", "3 Days / 2 Nights", 8499, "Experience Scotland of India", "Accommodation, All meals, Transport, Activities", "Abbey Falls, Coffee estates, Raja's Seat"},
	{11, "Mysore Royal Heritage", "2 Days / 1 Night", 4799, "Explore royal palaces and gardens", "Accommodation, Breakfast, Palace entry", "Mysore Palace, Chamundi Hills, Brindavan Gardens"},
}

// SeedCatalog inserts the initial destinations and packages once,
// keyed on the destinations table being empty.
func SeedCatalog(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM destinations`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding initial catalog data...")

	destStmt, err := db.Prepare(`
		INSERT INTO destinations (name, state, description, image_url, popular_attractions)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer destStmt.Close()

	// Packages reference destinations by seed position, so insert order matters.
	destIDs := make([]int64, 0, len(seedDestinations))
	for _, d := range seedDestinations {
		res, err := destStmt.Exec(d.Name, d.State, d.Description, d.ImageURL, d.Attractions)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		destIDs = append(destIDs, id)
	}

	pkgStmt, err := db.Prepare(`
		INSERT INTO packages (destination_id, title, duration, price, description, inclusions, highlights)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer pkgStmt.Close()

	for _, p := range seedPackages {
		destID := destIDs[p.DestinationID-1]
		if _, err := pkgStmt.Exec(destID, p.Title, p.Duration, p.Price, p.Description, p.Inclusions, p.Highlights); err != nil {
			return err
		}
	}

	log.Printf("Catalog seeded: %d destinations, %d packages", len(destIDs), len(seedPackages))
	return nil
}
