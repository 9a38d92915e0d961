package main

import "letify_backend/internal/services/dto"

// sampleProperties is the starter catalogue shown on a fresh site.
var sampleProperties = []dto.CreatePropertyRequest{
	{
		Title:       "Modern Luxury Villa",
		Location:    "Lekki Phase 1, Lagos",
		Price:       "₦85,000,000",
		Type:        "Sale",
		Description: "Stunning modern villa with premium finishes, spacious living areas, and a beautiful garden. This property features contemporary architecture and smart home technology.",
		Bedrooms:    5,
		Bathrooms:   4,
		Area:        "450 sqm",
		Images: []string{
			"https://images.unsplash.com/photo-1638369022547-1c763b1b9b3b?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxtb2Rlcm4lMjBsdXh1cnklMjBob3VzZXxlbnwxfHx8fDE3NjczNTI3ODB8MA&ixlib=rb-4.1.0&q=80&w=1080",
			"https://images.unsplash.com/photo-1613490493576-7fde63acd811?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHw0fHxtb2Rlcm4lMjBsdXh1cnklMjBob3VzZXxlbnwxfHx8fDE3Njc0OTMyOTN8MA&ixlib=rb-4.1.0&q=80&w=1080",
		},
		Features: []string{
			"Swimming Pool",
			"Garden",
			"Smart Home System",
			"Security System",
			"Parking for 3 Cars",
			"Generator",
			"Solar Panels",
			"Gym",
		},
	},
	{
		Title:       "Luxury Apartment",
		Location:    "Victoria Island, Lagos",
		Price:       "₦3,500,000/yr",
		Type:        "Rent",
		Description: "Elegant 3-bedroom apartment in the heart of Victoria Island. Features modern amenities, stunning city views, and access to premium facilities.",
		Bedrooms:    3,
		Bathrooms:   3,
		Area:        "200 sqm",
		Images: []string{
			"https://images.unsplash.com/photo-1638454668466-e8dbd5462f20?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxsdXh1cnklMjBhcGFydG1lbnQlMjBpbnRlcmlvcnxlbnwxfHx8fDE3Njc0MDc1NjN8MA&ixlib=rb-4.1.0&q=80&w=1080",
		},
		Features: []string{
			"24/7 Security",
			"Elevator",
			"Gym",
			"Swimming Pool",
			"Backup Generator",
			"Parking",
			"Air Conditioning",
		},
	},
	{
		Title:       "Contemporary Villa",
		Location:    "Banana Island, Lagos",
		Price:       "₦150,000,000",
		Type:        "Sale",
		Description: "Ultra-luxury waterfront villa on exclusive Banana Island. This masterpiece offers unparalleled luxury living with private beach access and world-class amenities.",
		Bedrooms:    6,
		Bathrooms:   5,
		Area:        "600 sqm",
		Images: []string{
			"https://images.unsplash.com/photo-1622015663381-d2e05ae91b72?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxtb2Rlcm4lMjB2aWxsYSUyMGV4dGVyaW9yfGVufDF8fHx8MTc2NzQyMDEwM3ww&ixlib=rb-4.1.0&q=80&w=1080",
		},
		Features: []string{
			"Private Beach Access",
			"Boat Dock",
			"Cinema Room",
			"Wine Cellar",
			"Infinity Pool",
			"Tennis Court",
			"Staff Quarters",
			"Smart Home Automation",
		},
	},
	{
		Title:       "Premium Penthouse",
		Location:    "Ikoyi, Lagos",
		Price:       "₦8,000,000/yr",
		Type:        "Rent",
		Description: "Spectacular penthouse with panoramic city views. Features luxury finishes, spacious terraces, and access to premium building amenities.",
		Bedrooms:    4,
		Bathrooms:   4,
		Area:        "350 sqm",
		Images: []string{
			"https://images.unsplash.com/photo-1606723325559-ad1bffa19bde?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxjb250ZW1wb3JhcnklMjBwZW50aG91c2V8ZW58MXx8fHwxNzY3NDc3NDkwfDA&ixlib=rb-4.1.0&q=80&w=1080",
		},
		Features: []string{
			"Rooftop Terrace",
			"Smart Home System",
			"Concierge Service",
			"Private Elevator",
			"Panoramic Views",
			"Premium Appliances",
			"Wine Storage",
		},
	},
	{
		Title:       "Executive Estate Home",
		Location:    "Lekki Phase 2, Lagos",
		Price:       "₦120,000,000",
		Type:        "Sale",
		Description: "Beautifully designed home in a secure gated estate. Perfect for families seeking a safe and luxurious environment with excellent amenities.",
		Bedrooms:    5,
		Bathrooms:   5,
		Area:        "500 sqm",
		Images: []string{
			"https://images.unsplash.com/photo-1531971589569-0d9370cbe1e5?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxsdXh1cnklMjByZWFsJTIwZXN0YXRlfGVufDF8fHx8MTc2NzM5Mjk1OHww&ixlib=rb-4.1.0&q=80&w=1080",
		},
		Features: []string{
			"Estate Clubhouse",
			"Tennis Court",
			"Children's Playground",
			"24/7 Estate Security",
			"Swimming Pool",
			"Landscaped Garden",
			"BQ Included",
		},
	},
	{
		Title:       "Commercial Office Building",
		Location:    "Marina, Lagos",
		Price:       "₦250,000,000",
		Type:        "Sale",
		Description: "Prime commercial property in Lagos business district. Perfect for corporate headquarters or investment. Modern facilities and strategic location.",
		Bedrooms:    0,
		Bathrooms:   10,
		Area:        "2000 sqm",
		Images: []string{
			"https://images.unsplash.com/photo-1694702740570-0a31ee1525c7?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxtb2Rlcm4lMjBvZmZpY2UlMjBidWlsZGluZ3xlbnwxfHx8fDE3Njc0NDcyMTh8MA&ixlib=rb-4.1.0&q=80&w=1080",
		},
		Features: []string{
			"Central Location",
			"Ample Parking",
			"Backup Power",
			"High-Speed Elevators",
			"Modern HVAC",
			"Security Systems",
			"Fiber Internet Ready",
			"Conference Facilities",
		},
	},
}
