// Seeds the reference_places catalog that powers city suggestions.
// Idempotent: rerunning skips rows that already exist.
package main

import (
	"context"
	"log"

	"github.com/google/uuid"

	"WANDERPLAN_BACK-END/internal/config"
	"WANDERPLAN_BACK-END/internal/db"
	"WANDERPLAN_BACK-END/internal/models"
)

type referencePlace struct {
	City     string
	Country  string
	Type     models.ItemType
	Name     string
	Location string
	Rating   float64
	Review   string
}

var referencePlaces = []referencePlace{
	// Tokyo
	{"Tokyo", "Japan", models.TypeHotel, "Park Hyatt Tokyo", "3-7-1-2 Nishi-Shinjuku, Shinjuku", 4.7, "Skyline views over Shinjuku, famous bar on the 52nd floor."},
	{"Tokyo", "Japan", models.TypeHotel, "Hoshinoya Tokyo", "1-9-1 Otemachi, Chiyoda", 4.8, "Ryokan-style luxury with an open-air onsen on the top floor."},
	{"Tokyo", "Japan", models.TypeRestaurant, "Sukiyabashi Jiro", "Tsukamoto Sogyo Building, 2-15 Ginza", 4.9, "Legendary omakase sushi counter in Ginza."},
	{"Tokyo", "Japan", models.TypeRestaurant, "Ichiran Shibuya", "1-22-7 Jinnan, Shibuya", 4.4, "Solo-booth tonkotsu ramen open around the clock."},
	{"Tokyo", "Japan", models.TypeActivity, "Senso-ji Temple", "2-3-1 Asakusa, Taito", 4.6, "Tokyo's oldest temple, approach through the Nakamise shopping street."},
	{"Tokyo", "Japan", models.TypeActivity, "teamLab Planets", "6-1-16 Toyosu, Koto", 4.5, "Immersive digital art museum, book tickets ahead."},

	// Kyoto
	{"Kyoto", "Japan", models.TypeHotel, "The Ritz-Carlton Kyoto", "Kamogawa Nijo-Ohashi Hotori", 4.8, "Riverside luxury near the old town."},
	{"Kyoto", "Japan", models.TypeRestaurant, "Kikunoi Honten", "459 Shimokawara-cho, Higashiyama", 4.7, "Three-star kaiseki in a century-old house."},
	{"Kyoto", "Japan", models.TypeActivity, "Fushimi Inari Taisha", "68 Fukakusa Yabunouchi-cho, Fushimi", 4.8, "Thousands of vermilion torii gates up the mountain, go at dawn."},
	{"Kyoto", "Japan", models.TypeActivity, "Arashiyama Bamboo Grove", "Sagaogurayama Tabuchiyama-cho", 4.5, "Walkable bamboo forest west of the city."},

	// Paris
	{"Paris", "France", models.TypeHotel, "Hotel Lutetia", "45 Boulevard Raspail", 4.6, "Art deco landmark on the Left Bank."},
	{"Paris", "France", models.TypeRestaurant, "Le Comptoir du Relais", "9 Carrefour de l'Odeon", 4.4, "Bistro classics in Saint-Germain, expect a queue."},
	{"Paris", "France", models.TypeRestaurant, "Septime", "80 Rue de Charonne", 4.7, "Modern tasting menus, reserve weeks ahead."},
	{"Paris", "France", models.TypeActivity, "Musee d'Orsay", "1 Rue de la Legion d'Honneur", 4.8, "Impressionist collection in a converted train station."},
	{"Paris", "France", models.TypeActivity, "Montmartre Walking Tour", "Place du Tertre", 4.5, "Sacre-Coeur, artist squares, and hillside streets."},

	// Rome
	{"Rome", "Italy", models.TypeHotel, "Hotel de Russie", "Via del Babuino 9", 4.7, "Secret terraced garden between Piazza del Popolo and the Spanish Steps."},
	{"Rome", "Italy", models.TypeRestaurant, "Roscioli", "Via dei Giubbonari 21", 4.6, "Deli-restaurant hybrid, carbonara worth the wait."},
	{"Rome", "Italy", models.TypeActivity, "Colosseum Underground Tour", "Piazza del Colosseo 1", 4.8, "Arena floor and hypogeum access with a guide."},
	{"Rome", "Italy", models.TypeActivity, "Vatican Museums", "Viale Vaticano", 4.7, "Sistine Chapel at the end, book the first morning slot."},

	// Bangkok
	{"Bangkok", "Thailand", models.TypeHotel, "Mandarin Oriental Bangkok", "48 Oriental Avenue", 4.8, "Grande dame of the Chao Phraya riverfront."},
	{"Bangkok", "Thailand", models.TypeRestaurant, "Jay Fai", "327 Maha Chai Road", 4.5, "Michelin-starred street food, the crab omelette is the order."},
	{"Bangkok", "Thailand", models.TypeActivity, "Grand Palace", "Na Phra Lan Road", 4.7, "Royal complex with Wat Phra Kaew, dress modestly."},
	{"Bangkok", "Thailand", models.TypeActivity, "Chatuchak Weekend Market", "Kamphaeng Phet 2 Road", 4.4, "Fifteen thousand stalls, weekends only."},

	// New York
	{"New York", "United States", models.TypeHotel, "The Bowery Hotel", "335 Bowery", 4.5, "Velvet-and-wood lobby, downtown location."},
	{"New York", "United States", models.TypeRestaurant, "Katz's Delicatessen", "205 E Houston Street", 4.5, "Pastrami on rye since 1888."},
	{"New York", "United States", models.TypeActivity, "The High Line", "Gansevoort Street to 34th Street", 4.7, "Elevated park on a former freight rail line."},

	// London
	{"London", "United Kingdom", models.TypeHotel, "The Hoxton Shoreditch", "81 Great Eastern Street", 4.4, "Lively lobby, compact rooms, east London base."},
	{"London", "United Kingdom", models.TypeRestaurant, "Dishoom Covent Garden", "12 Upper St Martin's Lane", 4.6, "Bombay cafe classics, no reservations for small groups."},
	{"London", "United Kingdom", models.TypeActivity, "Tower of London", "St Katharine's & Wapping", 4.6, "Crown Jewels and a thousand years of history."},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	pool, err := db.ConnectPostgres(ctx, cfg)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	inserted := 0
	for _, p := range referencePlaces {
		tag, err := pool.Exec(ctx,
			`INSERT INTO reference_places (id, city, country, item_type, name, location, rating, review)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (city, item_type, name) DO NOTHING`,
			uuid.New(), p.City, p.Country, string(p.Type), p.Name, p.Location, p.Rating, p.Review)
		if err != nil {
			log.Fatalf("insert %s / %s: %v", p.City, p.Name, err)
		}
		inserted += int(tag.RowsAffected())
	}

	log.Printf("seeded %d of %d reference places (%d already present)",
		inserted, len(referencePlaces), len(referencePlaces)-inserted)
}
