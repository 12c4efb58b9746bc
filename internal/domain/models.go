package domain

// Size tokens shared by customers and inventory items.
var Sizes = []string{"PP", "P", "M", "G", "GG", "G1", "G2", "G3", "Único"}

// Item gender classifications. "Unissex" matches any customer interest.
var ItemGenders = []string{"Feminino", "Masculino", "Unissex"}

// Customer gender-interest values. "Ambos" matches any item gender.
var Interests = []string{"Feminino", "Masculino", "Ambos"}

const (
	GenderUnisex   = "Unissex"
	InterestEither = "Ambos"

	StatusAvailable = "available"
	StatusSold      = "sold"
)

type Customer struct {
	ID             string `db:"id" json:"id"`
	Name           string `db:"name" json:"name"`
	WhatsApp       string `db:"whatsapp" json:"whatsapp"`
	GenderInterest string `db:"gender_interest" json:"gender_interest"`
	ClothingSize   string `db:"clothing_size" json:"clothing_size"`
	ShoeSize       string `db:"shoe_size" json:"shoe_size,omitempty"`
	FavCategories  string `db:"favorite_categories" json:"favorite_categories,omitempty"`
	CreatedAt      string `db:"created_at" json:"created_at"`
}

type Item struct {
	ID       string  `db:"id" json:"id"`
	Name     string  `db:"name" json:"name"`
	Size     string  `db:"size" json:"size"`
	Category string  `db:"category" json:"category"`
	Gender   string  `db:"gender" json:"gender"`
	Price    float64 `db:"price" json:"price"`
	IntakeAt string  `db:"intake_at" json:"intake_at"`
	Status   string  `db:"status" json:"status"` // available | sold
}

type Sale struct {
	ID         string  `db:"id" json:"id"`
	CustomerID string  `db:"customer_id" json:"customer_id"`
	ItemID     string  `db:"item_id" json:"item_id"`
	SoldAt     string  `db:"sold_at" json:"sold_at"`
	FinalPrice float64 `db:"final_price" json:"final_price"`
}

// MatchCandidate is an available item paired with the outbound message
// prepared for the customer it was matched to.
type MatchCandidate struct {
	Item     Item   `json:"item"`
	Message  string `json:"message"`
	SendLink string `json:"send_link"`
}

type Metrics struct {
	GrossRevenue  float64 `json:"gross_revenue"`
	AverageTicket float64 `json:"average_ticket"`
	TurnoverRate  float64 `json:"turnover_rate"`
}

func ValidSize(s string) bool { return contains(Sizes, s) }

func ValidItemGender(s string) bool { return contains(ItemGenders, s) }

func ValidInterest(s string) bool { return contains(Interests, s) }

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
