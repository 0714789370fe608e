package configs

import (
	"log"

	"github.com/mohameddsalmann/resturants-mangment/entity"
	"github.com/mohameddsalmann/resturants-mangment/services"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type demoItem struct {
	name        string
	description string
	price       string
	tags        string
	category    string
}

type demoRestaurant struct {
	name        string
	cuisine     string
	address     string
	phone       string
	hours       string
	taxRate     string
	ownerEmail  string
	ownerName   string
	categories  []string
	items       []demoItem
	tables      int
	promos      map[string]string
	kitchenPINs []string
}

var demoRestaurants = []demoRestaurant{
	{
		name:       "La Bella Italia",
		cuisine:    "Italian",
		address:    "42 Via Roma",
		phone:      "+1 555 0142",
		hours:      "11:00-23:00",
		taxRate:    "0.10",
		ownerEmail: "marco@labellaitalia.demo",
		ownerName:  "Marco Rossi",
		categories: []string{"Starters", "Pasta", "Pizza", "Desserts", "Drinks"},
		items: []demoItem{
			{"Bruschetta", "Grilled bread, tomato, basil", "8.50", "vegetarian", "Starters"},
			{"Spaghetti Carbonara", "Guanciale, pecorino, egg", "18.99", "", "Pasta"},
			{"Penne Arrabbiata", "Spicy tomato sauce", "15.50", "vegetarian,spicy", "Pasta"},
			{"Margherita", "San Marzano, fior di latte", "14.00", "vegetarian", "Pizza"},
			{"Tiramisu", "Espresso-soaked ladyfingers", "9.00", "vegetarian", "Desserts"},
			{"San Pellegrino", "Sparkling water 500ml", "4.00", "vegan,gluten-free", "Drinks"},
		},
		tables:      12,
		promos:      map[string]string{"SAVE20": "20", "WELCOME10": "10", "SUMMER15": "15"},
		kitchenPINs: []string{"1234"},
	},
	{
		name:       "Sakura Garden",
		cuisine:    "Japanese",
		address:    "7 Cherry Blossom Ave",
		phone:      "+1 555 0177",
		hours:      "12:00-22:00",
		taxRate:    "0.08",
		ownerEmail: "yuki@sakuragarden.demo",
		ownerName:  "Yuki Tanaka",
		categories: []string{"Sushi", "Ramen", "Sides", "Drinks"},
		items: []demoItem{
			{"Salmon Nigiri", "Two pieces", "7.50", "gluten-free", "Sushi"},
			{"Dragon Roll", "Eel, avocado, cucumber", "16.00", "", "Sushi"},
			{"Tonkotsu Ramen", "Pork broth, chashu, egg", "17.50", "", "Ramen"},
			{"Edamame", "Sea salt", "5.00", "vegan,gluten-free", "Sides"},
			{"Green Tea", "Hot sencha", "3.50", "vegan", "Drinks"},
		},
		tables:      12,
		promos:      map[string]string{"WELCOME10": "10"},
		kitchenPINs: []string{"5678"},
	},
}

// SeedDemo loads the demo dataset on an empty database. It is a no-op when
// any owner account already exists, so restarts do not duplicate data.
func SeedDemo() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("demo seed skipped: users already present")
		return nil
	}

	for _, dr := range demoRestaurants {
		hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		owner := entity.User{Email: dr.ownerEmail, Password: string(hash), Name: dr.ownerName}
		if err := db.Create(&owner).Error; err != nil {
			return err
		}

		taxRate, err := decimal.NewFromString(dr.taxRate)
		if err != nil {
			return err
		}
		rest := entity.Restaurant{
			Name:            dr.name,
			CuisineType:     dr.cuisine,
			Address:         dr.address,
			Phone:           dr.phone,
			OperatingHours:  dr.hours,
			TaxRate:         taxRate,
			Currency:        "USD",
			IsSetupComplete: true,
			OwnerID:         owner.ID,
		}
		if err := db.Create(&rest).Error; err != nil {
			return err
		}

		catIDs := map[string]uint{}
		for i, name := range dr.categories {
			cat := entity.Category{Name: name, SortOrder: i, RestaurantID: rest.ID}
			if err := db.Create(&cat).Error; err != nil {
				return err
			}
			catIDs[name] = cat.ID
		}

		for i, it := range dr.items {
			price, err := decimal.NewFromString(it.price)
			if err != nil {
				return err
			}
			item := entity.MenuItem{
				Name:         it.name,
				Description:  it.description,
				Price:        price,
				DietaryTags:  it.tags,
				IsAvailable:  true,
				SortOrder:    i,
				CategoryID:   catIDs[it.category],
				RestaurantID: rest.ID,
			}
			if err := db.Create(&item).Error; err != nil {
				return err
			}
		}

		for n := 1; n <= dr.tables; n++ {
			capacity := 2
			if n%3 == 0 {
				capacity = 4
			}
			if n%5 == 0 {
				capacity = 6
			}
			table := entity.Table{
				Number:       n,
				Capacity:     capacity,
				Status:       entity.TableAvailable,
				QRCodeData:   services.TableQRData(rest.ID, n),
				RestaurantID: rest.ID,
			}
			if err := db.Create(&table).Error; err != nil {
				return err
			}
		}

		for code, percent := range dr.promos {
			p, err := decimal.NewFromString(percent)
			if err != nil {
				return err
			}
			promo := entity.PromoCode{
				Code:            code,
				DiscountPercent: p,
				IsActive:        true,
				RestaurantID:    rest.ID,
			}
			if err := db.Create(&promo).Error; err != nil {
				return err
			}
		}

		for _, pin := range dr.kitchenPINs {
			pinHash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			staff := entity.Staff{
				Name:         "Kitchen",
				Role:         entity.RoleKitchen,
				PinHash:      string(pinHash),
				RestaurantID: rest.ID,
			}
			if err := db.Create(&staff).Error; err != nil {
				return err
			}
		}
	}

	log.Println("demo data seeded")
	return nil
}
