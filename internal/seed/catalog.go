package seed

import "vybe/internal/models"

func price(v float64) *float64 { return &v }

// catalog is the launch catalog: clothing, trainers and accessories with
// their retailer links.
var catalog = []entry{
	{
		Name: "Boxy Fit Graphic Hoodie", Brand: "Essentials",
		Description: "Premium heavyweight hoodie with relaxed fit and bold graphic print",
		Price:       89, OriginalPrice: price(120),
		Images:   []string{"/clothing-hoodie.jpg"},
		Category: models.CategoryClothing, Gender: models.GenderUnisex,
		IsNew: true, IsSale: true,
		Links:  map[string]string{"amazon": "https://amazon.com/dp/B08XYZ1234", "asos": "https://www.asos.com/essentials/essentials-boxy-fit-graphic-hoodie/prd/123456", "farfetch": "https://www.farfetch.com/shopping/men/essentials-boxy-fit-graphic-hoodie-item-123456.aspx"},
		Sizes:  []string{"XS", "S", "M", "L", "XL", "XXL"},
		Colors: []string{"Black", "Navy", "Grey", "White"},
		Tags:   []string{"hoodie", "graphic", "streetwear", "essentials"},
	},
	{
		Name: "Premium Cotton Tee", Brand: "ASOS Design",
		Description: "Soft-touch organic cotton t-shirt in relaxed fit",
		Price:       25, OriginalPrice: nil,
		Images:   []string{"/clothing-tee-white.jpg"},
		Category: models.CategoryClothing, Gender: models.GenderUnisex,
		IsNew: false, IsSale: false,
		Links:  map[string]string{"asos": "https://www.asos.com/asos-design/asos-design-premium-cotton-tee/prd/234567", "amazon": "https://amazon.com/dp/B08ABC5678"},
		Sizes:  []string{"XS", "S", "M", "L", "XL", "XXL"},
		Colors: []string{"White", "Black", "Grey", "Navy"},
		Tags:   []string{"tshirt", "cotton", "basics", "asos"},
	},
	{
		Name: "Tech Cargo Pants", Brand: "Nike ACG",
		Description: "Water-resistant cargo pants with multiple pockets and adjustable cuffs",
		Price:       145, OriginalPrice: nil,
		Images:   []string{"/clothing-cargo.jpg"},
		Category: models.CategoryClothing, Gender: models.GenderMen,
		IsNew: true, IsSale: false,
		Links:  map[string]string{"amazon": "https://amazon.com/dp/B08DEF9012", "stockx": "https://stockx.com/nike-acg-tech-cargo-pants", "goat": "https://goat.com/sneakers/acg-tech-cargo-pants"},
		Sizes:  []string{"28", "30", "32", "34", "36", "38"},
		Colors: []string{"Black", "Olive", "Khaki"},
		Tags:   []string{"cargo", "pants", "acg", "nike", "techwear"},
	},
	{
		Name: "Oversized Denim Jacket", Brand: "Levi's",
		Description: "Classic trucker jacket in oversized fit with vintage wash",
		Price:       98, OriginalPrice: price(128),
		Images:   []string{"/clothing-denim-jacket.jpg"},
		Category: models.CategoryClothing, Gender: models.GenderUnisex,
		IsNew: false, IsSale: true,
		Links:  map[string]string{"amazon": "https://amazon.com/dp/B08GHI3456", "asos": "https://www.asos.com/levis/levis-oversized-denim-jacket/prd/345678", "farfetch": "https://www.farfetch.com/shopping/men/levis-oversized-denim-jacket-item-345678.aspx"},
		Sizes:  []string{"XS", "S", "M", "L", "XL"},
		Colors: []string{"Light Blue", "Medium Blue", "Black"},
		Tags:   []string{"denim", "jacket", "levis", "vintage"},
	},
	{
		Name: "Air Jordan 1 Retro High OG", Brand: "Nike",
		Description: "Classic high-top basketball shoe in iconic colorways",
		Price:       180, OriginalPrice: nil,
		Images:   []string{"/product-jordan.jpg"},
		Category: models.CategoryTrainers, Gender: models.GenderMen,
		IsNew: true, IsSale: false,
		Links:  map[string]string{"stockx": "https://stockx.com/air-jordan-1-retro-high-og-chicago", "goat": "https://goat.com/sneakers/air-jordan-1-retro-high-og-chicago", "farfetch": "https://www.farfetch.com/shopping/men/nike-air-jordan-1-retro-high-og-item-456789.aspx"},
		Sizes:  []string{"7", "7.5", "8", "8.5", "9", "9.5", "10", "10.5", "11", "12"},
		Colors: []string{"Chicago", "Bred", "Royal"},
		Tags:   []string{"jordan", "basketball", "retro", "high-top"},
	},
	{
		Name: "Yeezy Boost 350 V2", Brand: "Adidas",
		Description: "Primeknit upper with Boost cushioning in iconic silhouette",
		Price:       220, OriginalPrice: nil,
		Images:   []string{"/product-yeezy.jpg"},
		Category: models.CategoryTrainers, Gender: models.GenderUnisex,
		IsNew: false, IsSale: false,
		Links:  map[string]string{"stockx": "https://stockx.com/adidas-yeezy-boost-350-v2", "goat": "https://goat.com/sneakers/adidas-yeezy-boost-350-v2", "amazon": "https://amazon.com/dp/B08YZY1234"},
		Sizes:  []string{"7", "7.5", "8", "8.5", "9", "9.5", "10", "10.5", "11", "12", "13"},
		Colors: []string{"Zebra", "Beluga", "Cream White"},
		Tags:   []string{"yeezy", "boost", "kanye", "primeknit"},
	},
	{
		Name: "Air Jordan 4 Retro", Brand: "Nike",
		Description: "Classic basketball shoe with visible Air unit and mesh panels",
		Price:       210, OriginalPrice: nil,
		Images:   []string{"/trainer-jordan4.jpg"},
		Category: models.CategoryTrainers, Gender: models.GenderMen,
		IsNew: true, IsSale: false,
		Links:  map[string]string{"stockx": "https://stockx.com/air-jordan-4-retro-bred", "goat": "https://goat.com/sneakers/air-jordan-4-retro-bred", "amazon": "https://amazon.com/dp/B08JKL5678"},
		Sizes:  []string{"7", "7.5", "8", "8.5", "9", "9.5", "10", "10.5", "11", "12"},
		Colors: []string{"Bred", "Fire Red", "Military Blue"},
		Tags:   []string{"jordan", "retro", "basketball", "4s"},
	},
	{
		Name: "Air Max 90", Brand: "Nike",
		Description: "Iconic Air Max model with visible Air unit and classic design",
		Price:       130, OriginalPrice: price(150),
		Images:   []string{"/trainer-airmax.jpg"},
		Category: models.CategoryTrainers, Gender: models.GenderUnisex,
		IsNew: false, IsSale: true,
		Links:  map[string]string{"amazon": "https://amazon.com/dp/B08MNO9012", "asos": "https://www.asos.com/nike/nike-air-max-90/prd/567890"},
		Sizes:  []string{"7", "7.5", "8", "8.5", "9", "9.5", "10", "10.5", "11", "12"},
		Colors: []string{"Infrared", "White", "Black"},
		Tags:   []string{"air max", "90", "running", "classic"},
	},
	{
		Name: "550", Brand: "New Balance",
		Description: "Vintage basketball shoe with premium leather construction",
		Price:       120, OriginalPrice: nil,
		Images:   []string{"/product-nb.jpg"},
		Category: models.CategoryTrainers, Gender: models.GenderUnisex,
		IsNew: true, IsSale: false,
		Links:  map[string]string{"amazon": "https://amazon.com/dp/B08PQR2345", "stockx": "https://stockx.com/new-balance-550"},
		Sizes:  []string{"7", "7.5", "8", "8.5", "9", "9.5", "10", "10.5", "11", "12"},
		Colors: []string{"White/Green", "White/Grey", "Black"},
		Tags:   []string{"new balance", "550", "vintage", "basketball"},
	},
	{
		Name: "Suede Classic", Brand: "Puma",
		Description: "Classic suede sneaker with iconic formstripe design",
		Price:       75, OriginalPrice: nil,
		Images:   []string{"/trainer-puma.jpg"},
		Category: models.CategoryTrainers, Gender: models.GenderUnisex,
		IsNew: false, IsSale: false,
		Links:  map[string]string{"amazon": "https://amazon.com/dp/B08STU6789", "asos": "https://www.asos.com/puma/puma-suede-classic/prd/678901"},
		Sizes:  []string{"7", "7.5", "8", "8.5", "9", "9.5", "10", "10.5", "11", "12"},
		Colors: []string{"Black", "Navy", "Burgundy"},
		Tags:   []string{"puma", "suede", "classic", "retro"},
	},
	{
		Name: "Club C 85", Brand: "Reebok",
		Description: "Classic tennis shoe with soft leather upper and vintage styling",
		Price:       85, OriginalPrice: nil,
		Images:   []string{"/trainer-reebok.jpg"},
		Category: models.CategoryTrainers, Gender: models.GenderUnisex,
		IsNew: false, IsSale: false,
		Links:  map[string]string{"amazon": "https://amazon.com/dp/B08VWX3456", "asos": "https://www.asos.com/reebok/reebok-club-c-85/prd/789012"},
		Sizes:  []string{"7", "7.5", "8", "8.5", "9", "9.5", "10", "10.5", "11", "12"},
		Colors: []string{"White", "Black", "Chalk"},
		Tags:   []string{"reebok", "club c", "tennis", "vintage"},
	},
	{
		Name: "Chuck Taylor High", Brand: "Converse",
		Description: "Iconic high-top canvas sneaker with rubber toe cap",
		Price:       65, OriginalPrice: price(80),
		Images:   []string{"/trainer-converse.jpg"},
		Category: models.CategoryTrainers, Gender: models.GenderUnisex,
		IsNew: false, IsSale: true,
		Links:  map[string]string{"amazon": "https://amazon.com/dp/B08XYZ8901", "asos": "https://www.asos.com/converse/converse-chuck-taylor-high/prd/890123"},
		Sizes:  []string{"6", "7", "8", "9", "10", "11", "12", "13"},
		Colors: []string{"Black", "White", "Red", "Navy"},
		Tags:   []string{"converse", "chuck taylor", "high top", "canvas"},
	},
	{
		Name: "Dunk Low", Brand: "Nike",
		Description: "Classic basketball shoe with low-top design and premium materials",
		Price:       110, OriginalPrice: nil,
		Images:   []string{"/trainer-dunk-low.jpg"},
		Category: models.CategoryTrainers, Gender: models.GenderUnisex,
		IsNew: true, IsSale: false,
		Links:  map[string]string{"stockx": "https://stockx.com/nike-dunk-low-panda", "goat": "https://goat.com/sneakers/nike-dunk-low-panda", "amazon": "https://amazon.com/dp/B08ABC1234"},
		Sizes:  []string{"7", "7.5", "8", "8.5", "9", "9.5", "10", "10.5", "11", "12"},
		Colors: []string{"Panda", "Kentucky", "Syracuse"},
		Tags:   []string{"dunk", "low", "basketball", "skate"},
	},
	{
		Name: "Old Skool", Brand: "Vans",
		Description: "Classic skate shoe with signature side stripe",
		Price:       70, OriginalPrice: nil,
		Images:   []string{"/trainer-vans.jpg"},
		Category: models.CategoryTrainers, Gender: models.GenderUnisex,
		IsNew: false, IsSale: false,
		Links:  map[string]string{"amazon": "https://amazon.com/dp/B08DEF5678", "asos": "https://www.asos.com/vans/vans-old-skool/prd/901234"},
		Sizes:  []string{"6", "7", "8", "9", "10", "11", "12", "13"},
		Colors: []string{"Black/White", "Navy/White", "Checkerboard"},
		Tags:   []string{"vans", "old skool", "skate", "classic"},
	},
	{
		Name: "Utility Crossbody Bag", Brand: "Carhartt WIP",
		Description: "Durable crossbody bag with multiple compartments and adjustable strap",
		Price:       89, OriginalPrice: nil,
		Images:   []string{"/accessory-bag.jpg"},
		Category: models.CategoryAccessories, Gender: models.GenderUnisex,
		IsNew: true, IsSale: false,
		Links:  map[string]string{"amazon": "https://amazon.com/dp/B08GHI7890", "asos": "https://www.asos.com/carhartt-wip/carhartt-wip-utility-bag/prd/012345"},
		Sizes:  []string{"One Size"},
		Colors: []string{"Black", "Brown", "Navy"},
		Tags:   []string{"bag", "crossbody", "carhartt", "utility"},
	},
	{
		Name: "Silver Cross Chain", Brand: "Vivienne Westwood",
		Description: "Sterling silver cross pendant on matching chain necklace",
		Price:       195, OriginalPrice: nil,
		Images:   []string{"/accessory-chain.jpg"},
		Category: models.CategoryAccessories, Gender: models.GenderUnisex,
		IsNew: false, IsSale: false,
		Links:  map[string]string{"farfetch": "https://www.farfetch.com/shopping/men/vivienne-westwood-silver-cross-chain-item-123456.aspx", "amazon": "https://amazon.com/dp/B08JKL9012"},
		Sizes:  []string{"18 inch", "20 inch", "24 inch"},
		Colors: []string{"Silver"},
		Tags:   []string{"necklace", "chain", "cross", "vivienne westwood", "silver"},
	},
	{
		Name: "Logo Bucket Hat", Brand: "Palace",
		Description: "Cotton bucket hat with embroidered logo detail",
		Price:       55, OriginalPrice: nil,
		Images:   []string{"/accessory-hat.jpg"},
		Category: models.CategoryAccessories, Gender: models.GenderUnisex,
		IsNew: true, IsSale: false,
		Links:  map[string]string{"stockx": "https://stockx.com/palace-logo-bucket-hat-black", "amazon": "https://amazon.com/dp/B08MNO3456"},
		Sizes:  []string{"One Size"},
		Colors: []string{"Black", "White", "Navy"},
		Tags:   []string{"hat", "bucket", "palace", "skate"},
	},
	{
		Name: "Leather Belt", Brand: "Gucci",
		Description: "Premium leather belt with iconic GG buckle",
		Price:       450, OriginalPrice: nil,
		Images:   []string{"/accessory-belt.jpg"},
		Category: models.CategoryAccessories, Gender: models.GenderMen,
		IsNew: false, IsSale: false,
		Links:  map[string]string{"farfetch": "https://www.farfetch.com/shopping/men/gucci-leather-belt-with-gg-buckle-item-234567.aspx", "amazon": "https://amazon.com/dp/B08PQR7890"},
		Sizes:  []string{"30", "32", "34", "36", "38", "40"},
		Colors: []string{"Black", "Brown"},
		Tags:   []string{"belt", "leather", "gucci", "luxury"},
	},
	{
		Name: "Sporty Sunglasses", Brand: "Oakley",
		Description: "Performance sunglasses with polarized lenses and lightweight frame",
		Price:       165, OriginalPrice: nil,
		Images:   []string{"/accessory-sunglasses.jpg"},
		Category: models.CategoryAccessories, Gender: models.GenderUnisex,
		IsNew: true, IsSale: false,
		Links:  map[string]string{"amazon": "https://amazon.com/dp/B08STU1234", "asos": "https://www.asos.com/oakley/oakley-sporty-sunglasses/prd/234567"},
		Sizes:  []string{"One Size"},
		Colors: []string{"Black", "Matte Black", "Tortoise"},
		Tags:   []string{"sunglasses", "oakley", "sport", "polarized"},
	},
	{
		Name: "Classic Watch", Brand: "Casio",
		Description: "Digital watch with alarm, stopwatch, and water resistance",
		Price:       65, OriginalPrice: nil,
		Images:   []string{"/accessory-watch.jpg"},
		Category: models.CategoryAccessories, Gender: models.GenderMen,
		IsNew: false, IsSale: false,
		Links:  map[string]string{"amazon": "https://amazon.com/dp/B08VWX5678", "asos": "https://www.asos.com/casio/casio-classic-watch/prd/345678"},
		Sizes:  []string{"One Size"},
		Colors: []string{"Black", "Silver", "Gold"},
		Tags:   []string{"watch", "casio", "digital", "classic"},
	},
}
