package geodata

import "weatherreport.app/models"

// Static country table. Latitude/longitude are the capital's coordinates.
var countries = []models.Country{
	{Name: "Algeria", Capital: "Algiers", Continent: "Africa", Latitude: 36.7538, Longitude: 3.0588},
	{Name: "Egypt", Capital: "Cairo", Continent: "Africa", Latitude: 30.0444, Longitude: 31.2357},
	{Name: "Ethiopia", Capital: "Addis Ababa", Continent: "Africa", Latitude: 9.0320, Longitude: 38.7469},
	{Name: "Ghana", Capital: "Accra", Continent: "Africa", Latitude: 5.6037, Longitude: -0.1870},
	{Name: "Kenya", Capital: "Nairobi", Continent: "Africa", Latitude: -1.2921, Longitude: 36.8219},
	{Name: "Morocco", Capital: "Rabat", Continent: "Africa", Latitude: 34.0209, Longitude: -6.8416},
	{Name: "Nigeria", Capital: "Abuja", Continent: "Africa", Latitude: 9.0765, Longitude: 7.3986},
	{Name: "Senegal", Capital: "Dakar", Continent: "Africa", Latitude: 14.7167, Longitude: -17.4677},
	{Name: "South Africa", Capital: "Pretoria", Continent: "Africa", Latitude: -25.7479, Longitude: 28.2293},
	{Name: "Tanzania", Capital: "Dodoma", Continent: "Africa", Latitude: -6.1630, Longitude: 35.7516},
	{Name: "Cabo Verde", Capital: "Praia", Continent: "Africa", Latitude: 14.9330, Longitude: -23.5133},

	{Name: "Bangladesh", Capital: "Dhaka", Continent: "Asia", Latitude: 23.8103, Longitude: 90.4125},
	{Name: "China", Capital: "Beijing", Continent: "Asia", Latitude: 39.9042, Longitude: 116.4074},
	{Name: "India", Capital: "New Delhi", Continent: "Asia", Latitude: 28.6139, Longitude: 77.2090},
	{Name: "Indonesia", Capital: "Jakarta", Continent: "Asia", Latitude: -6.2088, Longitude: 106.8456},
	{Name: "Israel", Capital: "Jerusalem", Continent: "Asia", Latitude: 31.7683, Longitude: 35.2137},
	{Name: "Japan", Capital: "Tokyo", Continent: "Asia", Latitude: 35.6762, Longitude: 139.6503},
	{Name: "Mongolia", Capital: "Ulaanbaatar", Continent: "Asia", Latitude: 47.8864, Longitude: 106.9057},
	{Name: "Pakistan", Capital: "Islamabad", Continent: "Asia", Latitude: 33.6844, Longitude: 73.0479},
	{Name: "Saudi Arabia", Capital: "Riyadh", Continent: "Asia", Latitude: 24.7136, Longitude: 46.6753},
	{Name: "Singapore", Capital: "Singapore", Continent: "Asia", Latitude: 1.3521, Longitude: 103.8198},
	{Name: "South Korea", Capital: "Seoul", Continent: "Asia", Latitude: 37.5665, Longitude: 126.9780},
	{Name: "Thailand", Capital: "Bangkok", Continent: "Asia", Latitude: 13.7563, Longitude: 100.5018},
	{Name: "Turkey", Capital: "Ankara", Continent: "Asia", Latitude: 39.9334, Longitude: 32.8597},
	{Name: "Vietnam", Capital: "Hanoi", Continent: "Asia", Latitude: 21.0278, Longitude: 105.8342},

	{Name: "Austria", Capital: "Vienna", Continent: "Europe", Latitude: 48.2082, Longitude: 16.3738},
	{Name: "Finland", Capital: "Helsinki", Continent: "Europe", Latitude: 60.1699, Longitude: 24.9384},
	{Name: "France", Capital: "Paris", Continent: "Europe", Latitude: 48.8566, Longitude: 2.3522},
	{Name: "Germany", Capital: "Berlin", Continent: "Europe", Latitude: 52.5200, Longitude: 13.4050},
	{Name: "Greece", Capital: "Athens", Continent: "Europe", Latitude: 37.9838, Longitude: 23.7275},
	{Name: "Iceland", Capital: "Reykjavik", Continent: "Europe", Latitude: 64.1466, Longitude: -21.9426},
	{Name: "Italy", Capital: "Rome", Continent: "Europe", Latitude: 41.9028, Longitude: 12.4964},
	{Name: "Netherlands", Capital: "Amsterdam", Continent: "Europe", Latitude: 52.3676, Longitude: 4.9041},
	{Name: "Norway", Capital: "Oslo", Continent: "Europe", Latitude: 59.9139, Longitude: 10.7522},
	{Name: "Poland", Capital: "Warsaw", Continent: "Europe", Latitude: 52.2297, Longitude: 21.0122},
	{Name: "Portugal", Capital: "Lisbon", Continent: "Europe", Latitude: 38.7223, Longitude: -9.1393},
	{Name: "Spain", Capital: "Madrid", Continent: "Europe", Latitude: 40.4168, Longitude: -3.7038},
	{Name: "Sweden", Capital: "Stockholm", Continent: "Europe", Latitude: 59.3293, Longitude: 18.0686},
	{Name: "Switzerland", Capital: "Bern", Continent: "Europe", Latitude: 46.9480, Longitude: 7.4474},
	{Name: "Ukraine", Capital: "Kyiv", Continent: "Europe", Latitude: 50.4501, Longitude: 30.5234},
	{Name: "United Kingdom", Capital: "London", Continent: "Europe", Latitude: 51.5074, Longitude: -0.1278},

	{Name: "Canada", Capital: "Ottawa", Continent: "North America", Latitude: 45.4215, Longitude: -75.6972},
	{Name: "Costa Rica", Capital: "San José", Continent: "North America", Latitude: 9.9281, Longitude: -84.0907},
	{Name: "Cuba", Capital: "Havana", Continent: "North America", Latitude: 23.1136, Longitude: -82.3666},
	{Name: "Guatemala", Capital: "Guatemala City", Continent: "North America", Latitude: 14.6349, Longitude: -90.5069},
	{Name: "Jamaica", Capital: "Kingston", Continent: "North America", Latitude: 17.9714, Longitude: -76.7920},
	{Name: "Mexico", Capital: "Mexico City", Continent: "North America", Latitude: 19.4326, Longitude: -99.1332},
	{Name: "Panama", Capital: "Panama City", Continent: "North America", Latitude: 8.9824, Longitude: -79.5199},
	{Name: "United States", Capital: "Washington D.C.", Continent: "North America", Latitude: 38.9072, Longitude: -77.0369},

	{Name: "Argentina", Capital: "Buenos Aires", Continent: "South America", Latitude: -34.6037, Longitude: -58.3816},
	{Name: "Bolivia", Capital: "Sucre", Continent: "South America", Latitude: -19.0196, Longitude: -65.2619},
	{Name: "Brazil", Capital: "Brasília", Continent: "South America", Latitude: -15.8267, Longitude: -47.9218},
	{Name: "Chile", Capital: "Santiago", Continent: "South America", Latitude: -33.4489, Longitude: -70.6693},
	{Name: "Colombia", Capital: "Bogotá", Continent: "South America", Latitude: 4.7110, Longitude: -74.0721},
	{Name: "Ecuador", Capital: "Quito", Continent: "South America", Latitude: -0.1807, Longitude: -78.4678},
	{Name: "Peru", Capital: "Lima", Continent: "South America", Latitude: -12.0464, Longitude: -77.0428},
	{Name: "Uruguay", Capital: "Montevideo", Continent: "South America", Latitude: -34.9011, Longitude: -56.1645},

	{Name: "Australia", Capital: "Canberra", Continent: "Oceania", Latitude: -35.2809, Longitude: 149.1300},
	{Name: "Fiji", Capital: "Suva", Continent: "Oceania", Latitude: -18.1248, Longitude: 178.4501},
	{Name: "New Zealand", Capital: "Wellington", Continent: "Oceania", Latitude: -41.2866, Longitude: 174.7756},
	{Name: "Papua New Guinea", Capital: "Port Moresby", Continent: "Oceania", Latitude: -9.4438, Longitude: 147.1803},
}

// Static city table.
var cities = []models.City{
	{Name: "Tokyo", Country: "Japan", Region: "Kanto", Latitude: 35.6762, Longitude: 139.6503, IsCapital: true},
	{Name: "Osaka", Country: "Japan", Region: "Kansai", Latitude: 34.6937, Longitude: 135.5023, IsCapital: false},
	{Name: "Sapporo", Country: "Japan", Region: "Hokkaido", Latitude: 43.0618, Longitude: 141.3545, IsCapital: false},

	{Name: "New Delhi", Country: "India", Region: "Delhi", Latitude: 28.6139, Longitude: 77.2090, IsCapital: true},
	{Name: "Mumbai", Country: "India", Region: "Maharashtra", Latitude: 19.0760, Longitude: 72.8777, IsCapital: false},
	{Name: "Bengaluru", Country: "India", Region: "Karnataka", Latitude: 12.9716, Longitude: 77.5946, IsCapital: false},
	{Name: "Chennai", Country: "India", Region: "Tamil Nadu", Latitude: 13.0827, Longitude: 80.2707, IsCapital: false},

	{Name: "Washington D.C.", Country: "United States", Region: "District of Columbia", Latitude: 38.9072, Longitude: -77.0369, IsCapital: true},
	{Name: "New York", Country: "United States", Region: "New York State", Latitude: 40.7128, Longitude: -74.0060, IsCapital: false},
	{Name: "Los Angeles", Country: "United States", Region: "California", Latitude: 34.0522, Longitude: -118.2437, IsCapital: false},
	{Name: "Chicago", Country: "United States", Region: "Illinois", Latitude: 41.8781, Longitude: -87.6298, IsCapital: false},
	{Name: "Houston", Country: "United States", Region: "Texas", Latitude: 29.7604, Longitude: -95.3698, IsCapital: false},
	{Name: "Seattle", Country: "United States", Region: "Washington State", Latitude: 47.6062, Longitude: -122.3321, IsCapital: false},

	{Name: "London", Country: "United Kingdom", Region: "England", Latitude: 51.5074, Longitude: -0.1278, IsCapital: true},
	{Name: "Edinburgh", Country: "United Kingdom", Region: "Scotland", Latitude: 55.9533, Longitude: -3.1883, IsCapital: false},
	{Name: "Cardiff", Country: "United Kingdom", Region: "Wales", Latitude: 51.4816, Longitude: -3.1791, IsCapital: false},

	{Name: "Paris", Country: "France", Region: "Île-de-France", Latitude: 48.8566, Longitude: 2.3522, IsCapital: true},
	{Name: "Marseille", Country: "France", Region: "Provence-Alpes-Côte d'Azur", Latitude: 43.2965, Longitude: 5.3698, IsCapital: false},
	{Name: "Lyon", Country: "France", Region: "Auvergne-Rhône-Alpes", Latitude: 45.7640, Longitude: 4.8357, IsCapital: false},

	{Name: "Berlin", Country: "Germany", Region: "Berlin State", Latitude: 52.5200, Longitude: 13.4050, IsCapital: true},
	{Name: "Munich", Country: "Germany", Region: "Bavaria", Latitude: 48.1351, Longitude: 11.5820, IsCapital: false},
	{Name: "Hamburg", Country: "Germany", Region: "Hamburg State", Latitude: 53.5511, Longitude: 9.9937, IsCapital: false},

	{Name: "Canberra", Country: "Australia", Region: "Australian Capital Territory", Latitude: -35.2809, Longitude: 149.1300, IsCapital: true},
	{Name: "Sydney", Country: "Australia", Region: "New South Wales", Latitude: -33.8688, Longitude: 151.2093, IsCapital: false},
	{Name: "Melbourne", Country: "Australia", Region: "Victoria", Latitude: -37.8136, Longitude: 144.9631, IsCapital: false},

	{Name: "Brasília", Country: "Brazil", Region: "Federal District", Latitude: -15.8267, Longitude: -47.9218, IsCapital: true},
	{Name: "São Paulo", Country: "Brazil", Region: "São Paulo State", Latitude: -23.5505, Longitude: -46.6333, IsCapital: false},
	{Name: "Rio de Janeiro", Country: "Brazil", Region: "Rio de Janeiro State", Latitude: -22.9068, Longitude: -43.1729, IsCapital: false},

	{Name: "Ottawa", Country: "Canada", Region: "Ontario", Latitude: 45.4215, Longitude: -75.6972, IsCapital: true},
	{Name: "Toronto", Country: "Canada", Region: "Ontario", Latitude: 43.6532, Longitude: -79.3832, IsCapital: false},
	{Name: "Vancouver", Country: "Canada", Region: "British Columbia", Latitude: 49.2827, Longitude: -123.1207, IsCapital: false},

	{Name: "Cairo", Country: "Egypt", Region: "Cairo Governorate", Latitude: 30.0444, Longitude: 31.2357, IsCapital: true},
	{Name: "Alexandria", Country: "Egypt", Region: "Alexandria Governorate", Latitude: 31.2001, Longitude: 29.9187, IsCapital: false},

	{Name: "Nairobi", Country: "Kenya", Region: "Nairobi County", Latitude: -1.2921, Longitude: 36.8219, IsCapital: true},
	{Name: "Mombasa", Country: "Kenya", Region: "Mombasa County", Latitude: -4.0435, Longitude: 39.6682, IsCapital: false},

	{Name: "Beijing", Country: "China", Region: "Beijing Municipality", Latitude: 39.9042, Longitude: 116.4074, IsCapital: true},
	{Name: "Shanghai", Country: "China", Region: "Shanghai Municipality", Latitude: 31.2304, Longitude: 121.4737, IsCapital: false},

	{Name: "Mexico City", Country: "Mexico", Region: "Mexico City Federal District", Latitude: 19.4326, Longitude: -99.1332, IsCapital: true},
	{Name: "Guadalajara", Country: "Mexico", Region: "Jalisco", Latitude: 20.6597, Longitude: -103.3496, IsCapital: false},

	{Name: "Buenos Aires", Country: "Argentina", Region: "Buenos Aires Autonomous City", Latitude: -34.6037, Longitude: -58.3816, IsCapital: true},
	{Name: "Córdoba", Country: "Argentina", Region: "Córdoba Province", Latitude: -31.4201, Longitude: -64.1888, IsCapital: false},

	{Name: "Wellington", Country: "New Zealand", Region: "Wellington Region", Latitude: -41.2866, Longitude: 174.7756, IsCapital: true},
	{Name: "Auckland", Country: "New Zealand", Region: "Auckland Region", Latitude: -36.8485, Longitude: 174.7633, IsCapital: false},
}

// Static region table.
var regions = []models.Region{
	{Name: "Kanto", Country: "Japan", Continent: "Asia"},
	{Name: "Kansai", Country: "Japan", Continent: "Asia"},
	{Name: "Hokkaido", Country: "Japan", Continent: "Asia"},
	{Name: "Delhi", Country: "India", Continent: "Asia"},
	{Name: "Maharashtra", Country: "India", Continent: "Asia"},
	{Name: "Karnataka", Country: "India", Continent: "Asia"},
	{Name: "Tamil Nadu", Country: "India", Continent: "Asia"},
	{Name: "Beijing Municipality", Country: "China", Continent: "Asia"},
	{Name: "Shanghai Municipality", Country: "China", Continent: "Asia"},
	{Name: "District of Columbia", Country: "United States", Continent: "North America"},
	{Name: "New York State", Country: "United States", Continent: "North America"},
	{Name: "California", Country: "United States", Continent: "North America"},
	{Name: "Illinois", Country: "United States", Continent: "North America"},
	{Name: "Texas", Country: "United States", Continent: "North America"},
	{Name: "Washington State", Country: "United States", Continent: "North America"},
	{Name: "England", Country: "United Kingdom", Continent: "Europe"},
	{Name: "Scotland", Country: "United Kingdom", Continent: "Europe"},
	{Name: "Wales", Country: "United Kingdom", Continent: "Europe"},
	{Name: "Île-de-France", Country: "France", Continent: "Europe"},
	{Name: "Provence-Alpes-Côte d'Azur", Country: "France", Continent: "Europe"},
	{Name: "Auvergne-Rhône-Alpes", Country: "France", Continent: "Europe"},
	{Name: "Berlin State", Country: "Germany", Continent: "Europe"},
	{Name: "Bavaria", Country: "Germany", Continent: "Europe"},
	{Name: "Hamburg State", Country: "Germany", Continent: "Europe"},
	{Name: "Australian Capital Territory", Country: "Australia", Continent: "Oceania"},
	{Name: "New South Wales", Country: "Australia", Continent: "Oceania"},
	{Name: "Victoria", Country: "Australia", Continent: "Oceania"},
	{Name: "Wellington Region", Country: "New Zealand", Continent: "Oceania"},
	{Name: "Auckland Region", Country: "New Zealand", Continent: "Oceania"},
	{Name: "Federal District", Country: "Brazil", Continent: "South America"},
	{Name: "São Paulo State", Country: "Brazil", Continent: "South America"},
	{Name: "Rio de Janeiro State", Country: "Brazil", Continent: "South America"},
	{Name: "Buenos Aires Autonomous City", Country: "Argentina", Continent: "South America"},
	{Name: "Córdoba Province", Country: "Argentina", Continent: "South America"},
	{Name: "Ontario", Country: "Canada", Continent: "North America"},
	{Name: "British Columbia", Country: "Canada", Continent: "North America"},
	{Name: "Cairo Governorate", Country: "Egypt", Continent: "Africa"},
	{Name: "Alexandria Governorate", Country: "Egypt", Continent: "Africa"},
	{Name: "Nairobi County", Country: "Kenya", Continent: "Africa"},
	{Name: "Mombasa County", Country: "Kenya", Continent: "Africa"},
	{Name: "Jalisco", Country: "Mexico", Continent: "North America"},
	{Name: "Mexico City Federal District", Country: "Mexico", Continent: "North America"},
}
