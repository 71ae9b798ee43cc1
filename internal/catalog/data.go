package catalog

import "travelease/internal/domain"

func festival(v int64) *int64 { return &v }

var destinations = []domain.Destination{
	{
		ID:          1,
		Name:        "Taj Mahal",
		Description: "The Taj Mahal is an ivory-white marble mausoleum on the south bank of the Yamuna river in the Indian city of Agra. It was commissioned in 1632 by the Mughal emperor, Shah Jahan, to house the tomb of his favourite wife, Mumtaz Mahal.",
		Image:       "https://images.unsplash.com/photo-1564507592333-c60657eea523?q=80&w=1000",
		Country:     "India",
		Rating:      4.9,
		Hotspots: []domain.Hotspot{
			{ID: 1, Name: "Mehtab Bagh", Description: "Garden complex offering views of Taj Mahal across the river", Image: "https://images.unsplash.com/photo-1548013146-72479768bada?q=80&w=876"},
			{ID: 2, Name: "Agra Fort", Description: "UNESCO World Heritage site located about 2.5 km from the Taj Mahal", Image: "https://images.unsplash.com/photo-1524613032530-449a5d94c285?q=80&w=870"},
		},
		MapLocation: domain.Coords{Lat: 27.1751, Lon: 78.0421},
	},
	{
		ID:          2,
		Name:        "Goa",
		Description: "Goa is a state on the southwestern coast of India known for its beaches, cuisine and vibrant nightlife.",
		Image:       "https://images.unsplash.com/photo-1512343879784-a960bf40e7f2?q=80&w=774",
		Country:     "India",
		Rating:      4.6,
		Hotspots: []domain.Hotspot{
			{ID: 1, Name: "Calangute Beach", Description: "Largest beach in North Goa known as the 'Queen of Beaches'", Image: "https://images.unsplash.com/photo-1584551246679-0daf3d275d0f?q=80&w=774"},
			{ID: 2, Name: "Fort Aguada", Description: "17th-century Portuguese fort offering panoramic views", Image: "https://images.unsplash.com/photo-1621831714462-bec8bef9c5e7?q=80&w=774"},
		},
		MapLocation: domain.Coords{Lat: 15.2993, Lon: 74.1240},
	},
	{
		ID:          3,
		Name:        "Jaipur",
		Description: "Jaipur is the capital of India's Rajasthan state, known for its vibrant pink buildings and rich royal heritage.",
		Image:       "https://images.unsplash.com/photo-1477587458883-47145ed94245?q=80&w=870",
		Country:     "India",
		Rating:      4.7,
		Hotspots: []domain.Hotspot{
			{ID: 1, Name: "Hawa Mahal", Description: "Palace of Winds, a stunning five-story palace with 953 windows", Image: "https://images.unsplash.com/photo-1632932693391-40e7c4b9d0de?q=80&w=774"},
			{ID: 2, Name: "Amber Fort", Description: "Magnificent fort complex built in 1592 with stunning architecture", Image: "https://images.unsplash.com/photo-1587295656906-b5b49ac259be?q=80&w=774"},
		},
		MapLocation: domain.Coords{Lat: 26.9124, Lon: 75.7873},
	},
	{
		ID:          4,
		Name:        "Varanasi",
		Description: "One of the world's oldest continually inhabited cities, and one of the holiest in Hinduism.",
		Image:       "https://images.unsplash.com/photo-1561361058-c12e46a4ac53?q=80&w=774",
		Country:     "India",
		Rating:      4.5,
		Hotspots: []domain.Hotspot{
			{ID: 1, Name: "Dashashwamedh Ghat", Description: "Famous ghat on the banks of the Ganges known for daily Ganga Aarti ceremony", Image: "https://images.unsplash.com/photo-1596402183530-77847fb4e47e?q=80&w=774"},
			{ID: 2, Name: "Kashi Vishwanath Temple", Description: "One of the most famous Hindu temples dedicated to Lord Shiva", Image: "https://images.unsplash.com/photo-1625124879886-a1d16eb2d6c1?q=80&w=774"},
		},
		MapLocation: domain.Coords{Lat: 25.3176, Lon: 82.9739},
	},
	{
		ID:          5,
		Name:        "Munnar",
		Description: "Hill station in Kerala known for its tea plantations and stunning mountain scenery.",
		Image:       "https://images.unsplash.com/photo-1605649487212-47bdab064df7?q=80&w=870",
		Country:     "India",
		Rating:      4.8,
		Hotspots: []domain.Hotspot{
			{ID: 1, Name: "Tea Gardens", Description: "Vast expanses of tea plantations offering beautiful views", Image: "https://images.unsplash.com/photo-1598977115839-648b3a3890f0?q=80&w=774"},
			{ID: 2, Name: "Eravikulam National Park", Description: "Home to the endangered Nilgiri Tahr and stunning flora", Image: "https://images.unsplash.com/photo-1590237321969-1c29d9644cb5?q=80&w=774"},
		},
		MapLocation: domain.Coords{Lat: 10.0889, Lon: 77.0595},
	},
	{
		ID:          6,
		Name:        "Darjeeling",
		Description: "Famous for its tea industry, the Darjeeling Himalayan Railway, and views of Kanchenjunga.",
		Image:       "https://images.unsplash.com/photo-1544157199-27f718d416d5?q=80&w=774",
		Country:     "India",
		Rating:      4.7,
		Hotspots: []domain.Hotspot{
			{ID: 1, Name: "Tiger Hill", Description: "Famous for its sunrise views over Kanchenjunga", Image: "https://images.unsplash.com/photo-1591017099023-c4e27f315542?q=80&w=774"},
			{ID: 2, Name: "Batasia Loop", Description: "Spiral railway track with a war memorial and garden", Image: "https://images.unsplash.com/photo-1563266857-86c6d44bfb97?q=80&w=774"},
		},
		MapLocation: domain.Coords{Lat: 27.0410, Lon: 88.2663},
	},
}

var hotels = []domain.Hotel{
	{
		ID:            1,
		Name:          "Taj View Hotel",
		Description:   "Experience unparalleled luxury with stunning views of the Taj Mahal. Each room offers a unique perspective of this wonder of the world, complemented by our world-class amenities and exceptional service.",
		Images:        []string{"https://images.unsplash.com/photo-1455587734955-081b22074882?q=80&w=870", "https://images.unsplash.com/photo-1578683010236-d716f9a3f461?q=80&w=870", "https://images.unsplash.com/photo-1617104551722-b413c0ae03d9?q=80&w=870"},
		DestinationID: 1,
		Rating:        4.8,
		Address:       "Taj East Gate Road, Agra, Uttar Pradesh, India",
		Amenities:     []string{"Free Wi-Fi", "Swimming Pool", "Spa", "Restaurant", "Room Service", "Fitness Center", "Airport Shuttle"},
		PricePerNight: domain.PriceSchedule{Regular: 12000, Festival: festival(15000)},
		FestivalsNearby: []string{"Taj Mahotsav"},
		Rooms: []domain.RoomType{
			{Label: "Deluxe Room", Occupancy: domain.Occupancy{Adults: 2, Children: 1}, Availability: 5, PriceMultiplier: 1},
			{Label: "Premium Suite", Occupancy: domain.Occupancy{Adults: 2, Children: 2}, Availability: 3, PriceMultiplier: 1.5},
			{Label: "Luxury Suite", Occupancy: domain.Occupancy{Adults: 4, Children: 2}, Availability: 2, PriceMultiplier: 2.2},
		},
		MapLocation: domain.Coords{Lat: 27.1731, Lon: 78.0421},
	},
	{
		ID:            2,
		Name:          "The Oberoi Amarvilas",
		Description:   "Ranked among the top luxury hotels in India, The Oberoi Amarvilas offers breathtaking views of the Taj Mahal from each room and suite. The hotel stands 600 meters from the Taj Mahal and features Mughal-inspired design.",
		Images:        []string{"https://images.unsplash.com/photo-1606402179428-a57976d71fa4?q=80&w=774", "https://images.unsplash.com/photo-1615874959474-d609969a20ed?q=80&w=870", "https://images.unsplash.com/photo-1566073771259-6a8506099945?q=80&w=870"},
		DestinationID: 1,
		Rating:        4.9,
		Address:       "Taj East Gate Road, Agra, Uttar Pradesh, India",
		Amenities:     []string{"Free Wi-Fi", "Swimming Pool", "Spa", "Restaurant", "Room Service", "Fitness Center", "Concierge", "Bar/Lounge", "Business Center"},
		PricePerNight: domain.PriceSchedule{Regular: 25000, Festival: festival(32000)},
		FestivalsNearby: []string{"Taj Mahotsav", "Diwali Celebrations"},
		Rooms: []domain.RoomType{
			{Label: "Premier Room", Occupancy: domain.Occupancy{Adults: 2, Children: 1}, Availability: 8, PriceMultiplier: 1},
			{Label: "Luxury Suite", Occupancy: domain.Occupancy{Adults: 2, Children: 2}, Availability: 4, PriceMultiplier: 1.8},
			{Label: "Kohinoor Suite", Occupancy: domain.Occupancy{Adults: 4, Children: 2}, Availability: 1, PriceMultiplier: 3.5},
		},
		MapLocation: domain.Coords{Lat: 27.1680, Lon: 78.0418},
	},
	{
		ID:            3,
		Name:          "Resort Terra Paraiso",
		Description:   "A beautiful Mediterranean-style resort nestled in the heart of Calangute, offering luxurious accommodation and world-class amenities just minutes from Goa's most famous beaches.",
		Images:        []string{"https://images.unsplash.com/photo-1580977276076-ae4b8c219b2e?q=80&w=774", "https://images.unsplash.com/photo-1607532950891-a8473483e0d8?q=80&w=774", "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?q=80&w=870"},
		DestinationID: 2,
		Rating:        4.6,
		Address:       "Plot No. 1/172, Umta Vaddo, Calangute, Goa, India",
		Amenities:     []string{"Free Wi-Fi", "Swimming Pool", "Restaurant", "Bar", "Room Service", "Garden", "Terrace", "Bicycle Rental"},
		PricePerNight: domain.PriceSchedule{Regular: 8000, Festival: festival(14000)},
		FestivalsNearby: []string{"Carnival", "Sunburn Festival"},
		Rooms: []domain.RoomType{
			{Label: "Superior Room", Occupancy: domain.Occupancy{Adults: 2, Children: 1}, Availability: 10, PriceMultiplier: 1},
			{Label: "Deluxe Room", Occupancy: domain.Occupancy{Adults: 3, Children: 1}, Availability: 7, PriceMultiplier: 1.3},
			{Label: "Family Suite", Occupancy: domain.Occupancy{Adults: 4, Children: 2}, Availability: 3, PriceMultiplier: 1.8},
		},
		MapLocation: domain.Coords{Lat: 15.5449, Lon: 73.7684},
	},
	{
		ID:            4,
		Name:          "Taj Lake Palace",
		Description:   "A luxury hotel located in the middle of Lake Pichola in Udaipur, appearing to float on the water. Built in 1746 as a royal summer palace, it has been converted into a luxury hotel.",
		Images:        []string{"https://images.unsplash.com/photo-1594128734721-ef35ec825d21?q=80&w=774", "https://images.unsplash.com/photo-1570213489059-0aac6626d93d?q=80&w=774", "https://images.unsplash.com/photo-1549641088-27fae0b50145?q=80&w=774"},
		DestinationID: 3,
		Rating:        4.9,
		Address:       "Lake Pichola, Udaipur, Rajasthan, India",
		Amenities:     []string{"Free Wi-Fi", "Swimming Pool", "Spa", "Restaurant", "Room Service", "Fitness Center", "Boat Transportation", "Butler Service"},
		PricePerNight: domain.PriceSchedule{Regular: 30000, Festival: festival(45000)},
		FestivalsNearby: []string{"Mewar Festival", "Diwali Celebrations"},
		Rooms: []domain.RoomType{
			{Label: "Luxury Room", Occupancy: domain.Occupancy{Adults: 2, Children: 1}, Availability: 6, PriceMultiplier: 1},
			{Label: "Royal Suite", Occupancy: domain.Occupancy{Adults: 2, Children: 2}, Availability: 4, PriceMultiplier: 2.5},
			{Label: "Grand Royal Suite", Occupancy: domain.Occupancy{Adults: 4, Children: 2}, Availability: 1, PriceMultiplier: 4},
		},
		MapLocation: domain.Coords{Lat: 24.5758, Lon: 73.6827},
	},
	{
		ID:            5,
		Name:          "BrijRama Palace",
		Description:   "A heritage hotel on the banks of the Ganges River in Varanasi, offering stunning views and a spiritual atmosphere in one of India's oldest living cities.",
		Images:        []string{"https://images.unsplash.com/photo-1582719471384-894fbb16e074?q=80&w=774", "https://images.unsplash.com/photo-1566073771259-6a8506099945?q=80&w=870", "https://images.unsplash.com/photo-1444201983204-c43cbd584d93?q=80&w=870"},
		DestinationID: 4,
		Rating:        4.8,
		Address:       "Darbhanga Ghat, Varanasi, Uttar Pradesh, India",
		Amenities:     []string{"Free Wi-Fi", "Restaurant", "Room Service", "Airport Shuttle", "Concierge", "Boat Rides", "Yoga Classes", "Spiritual Tours"},
		PricePerNight: domain.PriceSchedule{Regular: 15000, Festival: festival(22000)},
		FestivalsNearby: []string{"Dev Deepawali", "Maha Shivaratri"},
		Rooms: []domain.RoomType{
			{Label: "Heritage Room", Occupancy: domain.Occupancy{Adults: 2, Children: 1}, Availability: 8, PriceMultiplier: 1},
			{Label: "Nadidhara Room", Occupancy: domain.Occupancy{Adults: 2, Children: 2}, Availability: 5, PriceMultiplier: 1.4},
			{Label: "Maharaja Suite", Occupancy: domain.Occupancy{Adults: 3, Children: 2}, Availability: 2, PriceMultiplier: 2.2},
		},
		MapLocation: domain.Coords{Lat: 25.3052, Lon: 83.0185},
	},
	{
		ID:            6,
		Name:          "Windermere Estate",
		Description:   "A plantation retreat perched on a hill offering panoramic views of Munnar's lush valleys and tea gardens. An ideal spot for nature lovers and those seeking tranquility.",
		Images:        []string{"https://images.unsplash.com/photo-1602866913793-d2932a802479?q=80&w=774", "https://images.unsplash.com/photo-1584132869994-873f9363a562?q=80&w=870", "https://images.unsplash.com/photo-1614568112072-770f89361490?q=80&w=774"},
		DestinationID: 5,
		Rating:        4.7,
		Address:       "Pothamedu, Munnar, Kerala, India",
		Amenities:     []string{"Free Wi-Fi", "Restaurant", "Room Service", "Garden", "Hiking", "Plantation Tours", "Library", "Parking"},
		PricePerNight: domain.PriceSchedule{Regular: 10000, Festival: festival(13000)},
		FestivalsNearby: []string{"Onam", "Tea Festival"},
		Rooms: []domain.RoomType{
			{Label: "Garden Room", Occupancy: domain.Occupancy{Adults: 2, Children: 1}, Availability: 7, PriceMultiplier: 1},
			{Label: "Estate Room", Occupancy: domain.Occupancy{Adults: 2, Children: 2}, Availability: 5, PriceMultiplier: 1.3},
			{Label: "Planter's Villa", Occupancy: domain.Occupancy{Adults: 4, Children: 2}, Availability: 3, PriceMultiplier: 1.8},
		},
		MapLocation: domain.Coords{Lat: 10.0920, Lon: 77.0609},
	},
	{
		ID:            7,
		Name:          "Mayfair Darjeeling",
		Description:   "A luxury heritage hotel in Darjeeling with colonial architecture and stunning Himalayan views. Located near the famous Mall Road and offering top-notch amenities.",
		Images:        []string{"https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?q=80&w=870", "https://images.unsplash.com/photo-1564501049412-61c2a3083791?q=80&w=870", "https://images.unsplash.com/photo-1618773928121-c32242e63f39?q=80&w=870"},
		DestinationID: 6,
		Rating:        4.8,
		Address:       "The Mall, Opposite Governor House, Darjeeling, West Bengal, India",
		Amenities:     []string{"Free Wi-Fi", "Swimming Pool", "Spa", "Restaurant", "Room Service", "Fitness Center", "Children's Play Area", "Library"},
		PricePerNight: domain.PriceSchedule{Regular: 12000, Festival: festival(16000)},
		FestivalsNearby: []string{"Teesta Tea & Tourism Festival", "Lepchas' Namsoong"},
		Rooms: []domain.RoomType{
			{Label: "Family Room", Occupancy: domain.Occupancy{Adults: 2, Children: 2}, Availability: 8, PriceMultiplier: 1},
			{Label: "Deluxe Suite", Occupancy: domain.Occupancy{Adults: 3, Children: 1}, Availability: 4, PriceMultiplier: 1.5},
			{Label: "Executive Suite", Occupancy: domain.Occupancy{Adults: 4, Children: 2}, Availability: 2, PriceMultiplier: 2},
		},
		MapLocation: domain.Coords{Lat: 27.0426, Lon: 88.2631},
	},
}
