package store

import (
	"time"

	"github.com/snapwork/snapwork/internal/models"
)

// SeedGigs returns the demo gig set loaded into a fresh store. The entries
// carry static distance labels instead of coordinates; distance-aware
// queries annotate them as distance-unknown.
func SeedGigs() []models.Gig {
	now := time.Now()
	seed := func(id int64, title, description, category, location, payment, paymentType, timePosted, distance string, urgent bool, age time.Duration) models.Gig {
		return models.Gig{
			ID:           id,
			Title:        title,
			Description:  description,
			Category:     category,
			Location:     location,
			Payment:      payment,
			PaymentType:  paymentType,
			TimePosted:   timePosted,
			Urgent:       urgent,
			Distance:     distance,
			PostedBy:     0,
			PostedByName: "SnapWork",
			Status:       models.GigStatusOpen,
			CreatedAt:    now.Add(-age),
		}
	}

	return []models.Gig{
		seed(1, "Pool Cleaning Service",
			"Need someone to clean swimming pool, remove debris, and check chemical levels. No experience required, will provide training.",
			"cleaning", "Koramangala, Bangalore", "₹500", models.PaymentTypeFixed, "2 hours ago", "0.5 km", false, 2*time.Hour),
		seed(2, "Pet Walking - Golden Retriever",
			"Need someone to walk my friendly Golden Retriever twice daily. Morning 7 AM and evening 6 PM. Dog loves people!",
			"pet-care", "Indiranagar, Bangalore", "₹300/day", models.PaymentTypeDaily, "1 hour ago", "1.2 km", false, time.Hour),
		seed(3, "House Deep Cleaning",
			"Need thorough cleaning of 2BHK apartment including mopping, dusting, bathroom cleaning. All supplies provided.",
			"cleaning", "HSR Layout, Bangalore", "₹800", models.PaymentTypeFixed, "3 hours ago", "0.8 km", true, 3*time.Hour),
		seed(4, "Box Shifting & Moving Help",
			"Moving to new apartment, need 2 people to help pack and move boxes. Heavy lifting involved but manageable.",
			"moving", "BTM Layout, Bangalore", "₹600/person", models.PaymentTypeFixed, "30 minutes ago", "0.3 km", true, 30*time.Minute),
		seed(5, "Car Washing Service",
			"Need someone to wash my sedan car thoroughly - exterior wash, interior cleaning, and tire cleaning.",
			"car-care", "Jayanagar, Bangalore", "₹200", models.PaymentTypeFixed, "6 hours ago", "1.5 km", false, 6*time.Hour),
		seed(6, "Garden Watering & Plant Care",
			"Need someone to water plants and basic garden maintenance. Perfect for someone who loves plants!",
			"gardening", "Whitefield, Bangalore", "₹250/day", models.PaymentTypeDaily, "4 hours ago", "2.1 km", false, 4*time.Hour),
		seed(7, "Grocery Shopping & Delivery",
			"Need someone to buy groceries from nearby supermarket and deliver. Shopping list will be provided.",
			"delivery", "Electronic City, Bangalore", "₹150", models.PaymentTypeFixed, "1 hour ago", "3.2 km", false, time.Hour),
		seed(8, "Bike Washing & Cleaning",
			"Need someone to wash and clean my motorcycle. Simple job, all cleaning materials provided.",
			"car-care", "Marathahalli, Bangalore", "₹100", models.PaymentTypeFixed, "5 hours ago", "2.8 km", false, 5*time.Hour),
		seed(9, "Office Cleaning Service",
			"Small office space needs daily cleaning - sweeping, mopping, trash removal. Easy work, flexible timing.",
			"cleaning", "Koramangala, Bangalore", "₹400/day", models.PaymentTypeDaily, "8 hours ago", "0.6 km", false, 8*time.Hour),
		seed(10, "Dog Bathing Service",
			"Need someone to give my Labrador a bath. Dog is very friendly and loves water. All supplies provided.",
			"pet-care", "HSR Layout, Bangalore", "₹300", models.PaymentTypeFixed, "12 hours ago", "0.9 km", false, 12*time.Hour),
		seed(11, "Balcony Cleaning",
			"Need thorough cleaning of apartment balcony including floor mopping and plant area cleaning.",
			"cleaning", "Bellandur, Bangalore", "₹200", models.PaymentTypeFixed, "1 day ago", "4.1 km", false, 24*time.Hour),
		seed(12, "Furniture Moving Help",
			"Need help moving furniture within the house - sofa, dining table, and wardrobe. 2-3 hours work.",
			"moving", "Indiranagar, Bangalore", "₹500", models.PaymentTypeFixed, "2 days ago", "1.8 km", false, 48*time.Hour),
	}
}
