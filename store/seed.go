package store

import (
	"strconv"

	"github.com/kxxnxr13/web-inmobiliaria/models"
)

// SeedProperties returns the hardcoded fallback listing collection used when
// no valid persisted data exists. Each call returns a fresh copy.
func SeedProperties() []models.Property {
	seed := []models.Property{
		{
			ID:          "1",
			Title:       "Modern House in Residential Area",
			Description: "Beautiful 3-bedroom house with a private garden, perfect for families.",
			Price:       350000,
			Location:    "North Zone, City",
			Bedrooms:    3,
			Bathrooms:   2,
			Area:        150,
			Parking:     2,
			YearBuilt:   2020,
			Type:        models.ListingSale,
			Status:      models.StatusAvailable,
			ImageURL:    "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=400",
			CreatedAt:   "2024-01-10",
			LastUpdated: "2024-01-10",
			Owner:       models.SharedOwner(),
			Featured:    true,
			Characteristics: []string{
				"Air conditioning", "Fitted kitchen", "Private garden", "24/7 security",
			},
			Services:     []string{"Electricity", "Drinking water", "Natural gas"},
			Condition:    "Excellent",
			PropertyType: "House",
		},
		{
			ID:          "2",
			Title:       "Downtown Apartment",
			Description: "Modern apartment in the heart of the city with an excellent location.",
			Price:       1200,
			Location:    "Downtown, City",
			Bedrooms:    2,
			Bathrooms:   1,
			Area:        80,
			Parking:     1,
			YearBuilt:   2019,
			Type:        models.ListingRental,
			Status:      models.StatusAvailable,
			ImageURL:    "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=400",
			CreatedAt:   "2024-01-15",
			LastUpdated: "2024-01-15",
			Owner:       models.OwnedBy("2"),
			Characteristics: []string{
				"Ocean view", "Gym", "24/7 concierge",
			},
			Services:     []string{"Electricity", "Internet included"},
			Condition:    "Like new",
			PropertyType: "Apartment",
		},
		{
			ID:          "3",
			Title:       "Los Jardines Family Home",
			Description: "Spacious family home with a private garden and pool, perfect for large families. Quiet residential area.",
			Price:       320000,
			Location:    "East Zone, City",
			Bedrooms:    5,
			Bathrooms:   4,
			Area:        220,
			Parking:     3,
			YearBuilt:   2021,
			Type:        models.ListingSale,
			Status:      models.StatusAvailable,
			ImageURL:    "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=400",
			CreatedAt:   "2024-01-13",
			LastUpdated: "2024-01-13",
			Owner:       models.SharedOwner(),
			Featured:    true,
			Characteristics: []string{
				"Private pool", "Large garden", "Playroom", "Home office", "Covered terrace",
			},
			Services:     []string{},
			Condition:    "New",
			PropertyType: "House",
		},
		{
			ID:          "4",
			Title:       "Premium Executive Penthouse",
			Description: "Luxurious penthouse in the heart of the city with 360-degree panoramic views and premium amenities.",
			Price:       2500,
			Location:    "Downtown Zone, City",
			Bedrooms:    3,
			Bathrooms:   3,
			Area:        150,
			Parking:     2,
			YearBuilt:   2022,
			Type:        models.ListingRental,
			Status:      models.StatusAvailable,
			ImageURL:    "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=400",
			CreatedAt:   "2024-01-12",
			LastUpdated: "2024-01-12",
			Owner:       models.OwnedBy("2"),
			Characteristics: []string{
				"Panoramic terrace", "Private jacuzzi", "Smart home", "Gourmet kitchen", "Valet parking",
			},
			Services:     []string{},
			Condition:    "New",
			PropertyType: "Penthouse",
		},
		{
			ID:          "5",
			Title:       "Renovated Traditional House",
			Description: "Fully renovated traditional house with top-quality materials and a contemporary design.",
			Price:       195000,
			Location:    "West Zone, City",
			Bedrooms:    3,
			Bathrooms:   2,
			Area:        140,
			Parking:     2,
			YearBuilt:   2018,
			Type:        models.ListingSale,
			Status:      models.StatusAvailable,
			ImageURL:    "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=400",
			CreatedAt:   "2024-01-11",
			LastUpdated: "2024-01-11",
			Owner:       models.SharedOwner(),
			Characteristics: []string{
				"Hardwood floors", "Remodeled kitchen", "Renovated bathrooms", "Backyard", "Fireplace",
			},
			Services:     []string{},
			Condition:    "Renovated",
			PropertyType: "House",
		},
		{
			ID:          "6",
			Title:       "Modern Executive Apartment",
			Description: "Comfortable apartment ideal for professionals, fully furnished and move-in ready.",
			Price:       1200,
			Location:    "South Zone, City",
			Bedrooms:    1,
			Bathrooms:   1,
			Area:        65,
			Parking:     1,
			YearBuilt:   2020,
			Type:        models.ListingRental,
			Status:      models.StatusAvailable,
			ImageURL:    "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=400",
			CreatedAt:   "2024-01-10",
			LastUpdated: "2024-01-10",
			Owner:       models.OwnedBy("2"),
			Characteristics: []string{
				"Fully furnished", "Internet included", "Laundry", "Doorman", "Social area",
			},
			Services:     []string{"Electricity", "Drinking water"},
			Condition:    "Excellent",
			PropertyType: "Apartment",
		},
		{
			ID:          "7",
			Title:       "Luxury Villa with Infinity Pool",
			Description: "Exclusive luxury villa with an infinity pool, home theater, private gym and every modern comfort.",
			Price:       450000,
			Location:    "North Zone, City",
			Bedrooms:    6,
			Bathrooms:   5,
			Area:        350,
			Parking:     4,
			YearBuilt:   2023,
			Type:        models.ListingSale,
			Status:      models.StatusAvailable,
			ImageURL:    "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=400",
			CreatedAt:   "2024-01-09",
			LastUpdated: "2024-01-09",
			Owner:       models.SharedOwner(),
			Featured:    true,
			Characteristics: []string{
				"Infinity pool", "Home theater", "Private gym", "Wine cellar", "Smart home", "Landscaped garden",
			},
			Services:     []string{},
			Condition:    "New",
			PropertyType: "Villa",
		},
		{
			ID:          "8",
			Title:       "Spacious Family Apartment",
			Description: "Perfect for families with children, close to schools and parks. Bright and roomy with a great layout.",
			Price:       1600,
			Location:    "East Zone, City",
			Bedrooms:    3,
			Bathrooms:   2,
			Area:        110,
			Parking:     2,
			YearBuilt:   2019,
			Type:        models.ListingRental,
			Status:      models.StatusAvailable,
			ImageURL:    "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=400",
			CreatedAt:   "2024-01-08",
			LastUpdated: "2024-01-08",
			Owner:       models.OwnedBy("2"),
			Characteristics: []string{
				"Play area", "Near schools", "Children's park", "Common room", "BBQ area",
			},
			Services:     []string{},
			Condition:    "Very good",
			PropertyType: "Apartment",
		},
		{
			ID:          "9",
			Title:       "Minimalist Architectural House",
			Description: "Contemporary minimalist design with premium finishes, large windows and open spaces full of natural light.",
			Price:       275000,
			Location:    "Downtown Zone, City",
			Bedrooms:    3,
			Bathrooms:   3,
			Area:        160,
			Parking:     2,
			YearBuilt:   2021,
			Type:        models.ListingSale,
			Status:      models.StatusAvailable,
			ImageURL:    "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=400",
			CreatedAt:   "2024-01-07",
			LastUpdated: "2024-01-07",
			Owner:       models.SharedOwner(),
			Characteristics: []string{
				"Minimalist design", "Large windows", "Open spaces", "Home automation", "Green terrace",
			},
			Services:     []string{},
			Condition:    "Like new",
			PropertyType: "House",
		},
		{
			ID:          "10",
			Title:       "Converted Industrial Loft",
			Description: "One-of-a-kind industrial loft fully renovated in the arts district. High ceilings, exposed beams and a modern urban design.",
			Price:       2200,
			Location:    "Arts District, City",
			Bedrooms:    2,
			Bathrooms:   2,
			Area:        130,
			Parking:     1,
			YearBuilt:   2020,
			Type:        models.ListingRental,
			Status:      models.StatusAvailable,
			ImageURL:    "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=400",
			CreatedAt:   "2024-01-06",
			LastUpdated: "2024-01-06",
			Owner:       models.OwnedBy("2"),
			Characteristics: []string{
				"High ceilings", "Exposed beams", "Industrial design", "Arts district", "Nearby studios",
			},
			Services:     []string{},
			Condition:    "Renovated",
			PropertyType: "Loft",
		},
		{
			ID:          "11",
			Title:       "Sustainable Eco House",
			Description: "Eco house with solar panels, a rainwater harvesting system and sustainable materials.",
			Price:       385000,
			Location:    "Green Zone, City",
			Bedrooms:    4,
			Bathrooms:   3,
			Area:        200,
			Parking:     2,
			YearBuilt:   2022,
			Type:        models.ListingSale,
			Status:      models.StatusAvailable,
			ImageURL:    "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=400",
			CreatedAt:   "2024-01-05",
			LastUpdated: "2024-01-05",
			Owner:       models.SharedOwner(),
			Featured:    true,
			Characteristics: []string{
				"Solar panels", "Rainwater harvesting", "Eco-friendly materials", "Organic garden", "LEED certification",
			},
			Services:     []string{},
			Condition:    "New",
			PropertyType: "Eco House",
		},
		{
			ID:          "12",
			Title:       "Modern Duplex with City View",
			Description: "Elegant two-level duplex with a panoramic view of the city. Modern design and luxury finishes.",
			Price:       1950,
			Location:    "Uptown, City",
			Bedrooms:    3,
			Bathrooms:   2,
			Area:        125,
			Parking:     2,
			YearBuilt:   2021,
			Type:        models.ListingRental,
			Status:      models.StatusAvailable,
			ImageURL:    "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=400",
			CreatedAt:   "2024-01-04",
			LastUpdated: "2024-01-04",
			Owner:       models.OwnedBy("2"),
			Characteristics: []string{
				"Panoramic view", "Two levels", "Luxury finishes", "Private terrace", "Second-floor studio",
			},
			Services:     []string{},
			Condition:    "Like new",
			PropertyType: "Duplex",
		},
	}

	for i := range seed {
		seed[i].PricePerArea = PricePerArea(seed[i].Price, seed[i].Area)
	}
	return seed
}

// SeedAmenities returns the initial amenity catalog. Each call returns a
// fresh copy.
func SeedAmenities() []models.Amenity {
	type entry struct {
		name     string
		icon     string
		category models.AmenityCategory
	}
	entries := []entry{
		{"Air conditioning", "Wind", models.CategoryComfort},
		{"Heating", "Flame", models.CategoryComfort},
		{"Fitted kitchen", "ChefHat", models.CategoryComfort},
		{"Equipped kitchen", "Utensils", models.CategoryComfort},
		{"Furnished", "Armchair", models.CategoryComfort},
		{"24/7 security", "Shield", models.CategorySecurity},
		{"Security cameras", "Camera", models.CategorySecurity},
		{"Doorman", "UserCheck", models.CategorySecurity},
		{"Alarm system", "ShieldAlert", models.CategorySecurity},
		{"Fiber optic internet", "Wifi", models.CategoryConnectivity},
		{"Internet included", "Globe", models.CategoryConnectivity},
		{"Cable TV", "Tv", models.CategoryConnectivity},
		{"Electricity", "Zap", models.CategoryUtilities},
		{"Drinking water", "Droplets", models.CategoryUtilities},
		{"Natural gas", "Flame", models.CategoryUtilities},
		{"Laundry", "Shirt", models.CategoryUtilities},
		{"Swimming pool", "Waves", models.CategoryRecreation},
		{"Gym", "Dumbbell", models.CategoryRecreation},
		{"Private garden", "Trees", models.CategoryRecreation},
		{"Terrace", "Building", models.CategoryRecreation},
		{"Balcony", "Home", models.CategoryRecreation},
		{"BBQ area", "ChefHat", models.CategoryRecreation},
		{"Common room", "Users", models.CategoryRecreation},
		{"Playground", "Gamepad2", models.CategoryRecreation},
		{"Parking", "Car", models.CategoryTransportation},
		{"Garage", "Warehouse", models.CategoryTransportation},
		{"Public transport nearby", "Bus", models.CategoryTransportation},
	}

	amenities := make([]models.Amenity, len(entries))
	for i, e := range entries {
		amenities[i] = models.Amenity{
			ID:        strconv.Itoa(i + 1),
			Name:      e.name,
			Icon:      e.icon,
			Category:  e.category,
			IsActive:  true,
			CreatedAt: "2024-01-01",
		}
	}
	return amenities
}
