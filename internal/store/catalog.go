package store

import "heartdrop/internal/domain"

// TotalDonations is the running donations total in cents shown in the header.
const TotalDonations int64 = 1003000

// DemoCatalog is the 24-item demo product set used when the database starts
// empty. Tests lean on it too: ids are stable, order matters, and exactly
// three entries mention "camera".
func DemoCatalog() []domain.Product {
	mk := func(id int64, name string, price int64, img, desc string) domain.Product {
		return domain.Product{
			ID: id, Name: name, Price: price,
			ImageURL:    "https://images.unsplash.com/" + img + "?w=400&h=300&fit=crop",
			Description: desc,
			Condition:   "USED",
			Active:      true,
		}
	}
	return []domain.Product{
		mk(1, "Seriously cool green car", 120000, "photo-1533473359331-0135ef1b58bf", "eco friendly electric car"),
		mk(2, "Shiny sparkling car", 120000, "photo-1605559424843-9e4c228bf1c2", "luxury sedan"),
		mk(3, "Tokyo flat for rent", 120000, "photo-1540959733332-eab4deabeeaf", "downtown apartment"),
		mk(4, "Tulips for sale (yellow, pink..)", 120000, "photo-1520763185298-1b434c919102", "spring tulips"),
		mk(5, "Sparrow that fainted by the hall", 120000, "photo-1551763345-31a4c5c3ca76", "adorable sparrow"),
		mk(6, "10 hours of coding for you", 120000, "photo-1461749280684-dccba630e2f6", "programming service"),
		mk(7, "Left dorm bed, free to a good home", 120000, "photo-1586023492125-27b2c045efd7", "dormitory bed"),
		mk(8, "AI-generated burger (inedible)", 120000, "photo-1568901346375-23c9450c58cd", "artificial burger"),
		mk(9, "35MM CO camera", 120000, "photo-1606983340126-99ab4feaa64a", "vintage film camera"),
		mk(10, "Camera that turns ON and OFF", 120000, "photo-1502920917128-1aa500764cbd", "digital camera"),
		mk(11, "Smart watch (has a compass)", 120000, "photo-1434493789847-2f02dc6ca35d", "gps smartwatch with a tiny camera"),
		mk(12, "25% tariff exemption", 120000, "photo-1586771107445-d3ca888129ff", "duty free perk"),
		mk(13, "Grandma's homemade dumplings", 85000, "photo-1534422298391-e4f8c172dddb", "handmade dumplings"),
		mk(14, "New shoes (worn once)", 95000, "photo-1549298916-b41d501d3772", "almost new shoes"),
		mk(15, "Home-grown cactus", 35000, "photo-1509587584298-0f3b3a3a1797", "mini cactus"),
		mk(16, "Ramen cooking know-how", 15000, "photo-1612556490533-c4d5c7adcf8e", "cooking secrets"),
		mk(17, "100 strands of cat fur", 25000, "photo-1514888286974-6c03e2ca1dba", "cat fur collection"),
		mk(18, "iPhone 13 (cracked screen)", 450000, "photo-1592750475338-74b7b21085ab", "secondhand phone"),
		mk(19, "Dust from my desk", 5000, "photo-1507003211169-0a1dd7228f2d", "historic dust"),
		mk(20, "Coffee beans (ground yesterday)", 45000, "photo-1509042239860-f550ce710b93", "ground coffee"),
		mk(21, "Game console (joycon drift)", 280000, "photo-1606144042614-b2417e99c4e3", "nintendo switch"),
		mk(22, "Dog bark recording (WAV)", 12000, "photo-1552053831-71594a27632d", "sound file"),
		mk(23, "Unfinished puzzle (98%)", 18000, "photo-1611273426858-450d8e3c9fce", "1000 piece puzzle"),
		mk(24, "Umbrella (has met wind)", 8000, "photo-1558618666-fcd25c85cd64", "folding umbrella"),
	}
}
