package catalog

import (
	"strings"

	"github.com/cx-tal-miterani/flightselect/internal/models"
)

// Amenity slices returned from this file are shared between every
// aircraft built from them. Callers must not modify them.

var genericAmenities = []*models.Amenity{
	{
		ID:          "wifi",
		Name:        "High-Speed Wi-Fi",
		Icon:        "Wifi",
		Description: "Stay connected with our high-speed satellite internet.",
	},
	{
		ID:          "tv",
		Name:        "4K Entertainment",
		Icon:        "Tv",
		Description: "Personal 4K screens with over 1000 movies and shows.",
	},
	{
		ID:          "snacks",
		Name:        "Premium Snacks",
		Icon:        "Coffee",
		Description: "Complimentary premium snacks and beverages.",
		Items:       []string{"Gourmet Pretzels", "Truffle Popcorn", "Artisanal Cookies", "Sparkling Water", "Craft Soda"},
	},
	{
		ID:          "power",
		Name:        "Power Outlets",
		Icon:        "Zap",
		Description: "AC power and USB-C charging at every seat.",
	},
}

type airlineAmenitySet struct {
	airline   string
	amenities []*models.Amenity
}

// Matched in order by substring of the airline name.
var airlineAmenities = []airlineAmenitySet{
	{airline: "United Airlines", amenities: []*models.Amenity{
		{ID: "wifi", Name: "United Wi-Fi", Icon: "Wifi", Description: "Purchase Wi-Fi for messaging and streaming."},
		{ID: "entertainment", Name: "United Private Screening", Icon: "Tv", Description: "Free movies and TV on your own device."},
		{ID: "snacks", Name: "Snacks", Icon: "Coffee", Description: "Complimentary snacks on longer flights.", Items: []string{"Stroopwafel", "Chocolate Quinoa Crisps", "Savory Snack Mix"}, Image: "/images/stroopwafel.jpg"},
		{ID: "power", Name: "Power", Icon: "Zap", Description: "Power outlets in select rows."},
	}},
	{airline: "Delta Air Lines", amenities: []*models.Amenity{
		{ID: "wifi", Name: "Fast, Free Wi-Fi", Icon: "Wifi", Description: "Free Wi-Fi for SkyMiles members."},
		{ID: "entertainment", Name: "Delta Studio", Icon: "Tv", Description: "1,000+ hours of free entertainment on seatback screens."},
		{ID: "snacks", Name: "Premium Snacks", Icon: "Coffee", Description: "Complimentary brand-name snacks.", Items: []string{"Biscoff Cookies", "SunChips", "Almonds"}, Image: "/images/biscoff.jpg"},
		{ID: "power", Name: "Power", Icon: "Zap", Description: "AC power and USB ports at every seat."},
	}},
	{airline: "American Airlines", amenities: []*models.Amenity{
		{ID: "wifi", Name: "High-Speed Wi-Fi", Icon: "Wifi", Description: "Gate-to-gate Wi-Fi available for purchase."},
		{ID: "entertainment", Name: "Free Entertainment", Icon: "Tv", Description: "Stream free movies and TV to your device."},
		{ID: "snacks", Name: "Snacks", Icon: "Coffee", Description: "Complimentary pretzels or Biscoff cookies.", Items: []string{"Pretzels", "Biscoff Cookies"}},
		{ID: "power", Name: "Power", Icon: "Zap", Description: "Power outlets on most mainline aircraft."},
	}},
	{airline: "Southwest Airlines", amenities: []*models.Amenity{
		{ID: "wifi", Name: "Inflight Internet", Icon: "Wifi", Description: "$8 Internet per device."},
		{ID: "entertainment", Name: "Free Movies & TV", Icon: "Tv", Description: "Watch free movies and live TV on your device."},
		{ID: "snacks", Name: "Snacks", Icon: "Coffee", Description: "Complimentary snack mix and non-alcoholic drinks.", Items: []string{"Snack Mix", "Brownie Brittle"}},
		{ID: "bags", Name: "Bags Fly Free", Icon: "Luggage", Description: "Two checked bags fly free."},
	}},
	{airline: "Spirit Airlines", amenities: []*models.Amenity{
		{ID: "wifi", Name: "Wi-Fi", Icon: "Wifi", Description: "High-speed Wi-Fi available for purchase."},
		{ID: "snacks", Name: "Buy on Board", Icon: "Coffee", Description: "Refreshments and snacks available for purchase."},
		{ID: "seat", Name: "Big Front Seat", Icon: "Armchair", Description: "Wider seats available for upgrade."},
	}},
}

var defaultAmenities = []*models.Amenity{
	{ID: "wifi", Name: "Wi-Fi", Icon: "Wifi", Description: "Wi-Fi availability varies by aircraft."},
	{ID: "snacks", Name: "Refreshments", Icon: "Coffee", Description: "Snacks and drinks available."},
}

// Premium sets referenced by curated flights as "<carrier>.<id>".
var premiumAmenities = map[string]*models.Amenity{
	"united.stroopwafel": {ID: "stroopwafel", Name: "Stroopwafel", Icon: "Cookie", Description: "The famous United Stroopwafel. A Dutch caramel waffle treat.", Items: []string{"Daelmans Stroopwafel"}, Image: "/images/united_stroopwafel.png"},
	"united.quinoa":      {ID: "quinoa", Name: "Chocolate Quinoa Crisps", Icon: "Cookie", Description: "Undercover Snacks Dark Chocolate + Sea Salt Quinoa Crisps.", Items: []string{"Dark Chocolate Quinoa Crisps"}},
	"united.tapas":       {ID: "tapas", Name: "Tapas Snack Box", Icon: "Utensils", Description: "Available for purchase. Includes almonds, olives, hummus, and crackers.", Items: []string{"Almonds", "Olives", "Hummus", "Bruschetta", "Crackers"}},
	"united.illy":        {ID: "illy", Name: "Illy Coffee", Icon: "Coffee", Description: "Premium illy dark roast coffee, brewed fresh on board."},
	"united.wifi_panasonic": {ID: "wifi_panasonic", Name: "United Wi-Fi (Panasonic)", Icon: "Wifi", Description: "Global satellite coverage. Streaming supported on select plans."},
	"united.wifi_viasat":    {ID: "wifi_viasat", Name: "United Wi-Fi (Viasat)", Icon: "Wifi", Description: "High-speed Ka-band internet. Gate-to-gate connectivity."},
	"united.polaris_dining": {ID: "polaris_dining", Name: "Polaris Dining", Icon: "Utensils", Description: "Multi-course dining experience designed by The Trotter Project.", Items: []string{"Chilled Appetizer", "Salad", "Choice of Entree", "Ice Cream Sundae Cart"}},
	"united.screens":        {ID: "screens", Name: "Seatback Entertainment", Icon: "Tv", Description: "10-inch to 16-inch HD screens with extensive movie library."},
	"united.power":          {ID: "power", Name: "Power Everywhere", Icon: "Zap", Description: "AC power outlet and USB-A port at every seat."},

	"delta.biscoff":          {ID: "biscoff", Name: "Biscoff Cookies", Icon: "Cookie", Description: "The iconic Delta Biscoff cookies.", Items: []string{"Lotus Biscoff Cookies"}, Image: "/images/delta_biscoff.png"},
	"delta.starbucks":        {ID: "starbucks", Name: "Starbucks Coffee", Icon: "Coffee", Description: "Freshly brewed Starbucks coffee served on every flight."},
	"delta.delta_studio":     {ID: "delta_studio", Name: "Delta Studio", Icon: "Tv", Description: "1,000+ hours of free entertainment on seatback screens."},
	"delta.wifi_fast":        {ID: "wifi_fast", Name: "Fast Free Wi-Fi", Icon: "Wifi", Description: "Fast, free Wi-Fi for SkyMiles members."},
	"delta.delta_one_dining": {ID: "delta_one_dining", Name: "Delta One Dining", Icon: "Utensils", Description: "Chef-curated meals with Alessi service ware.", Items: []string{"Fox Bros. BBQ", "Seasonal Entrees", "Dessert Cart"}},
	"delta.delta_one_suite":  {ID: "delta_one_suite", Name: "Delta One Suite", Icon: "Armchair", Description: "Full-height door and lie-flat bed for total privacy."},

	"ba.afternoon_tea":     {ID: "afternoon_tea", Name: "Afternoon Tea", Icon: "Coffee", Description: "Traditional afternoon tea with scones, jam, and clotted cream.", Items: []string{"Scones", "Clotted Cream", "Strawberry Jam", "Finger Sandwiches"}, Image: "/images/ba_scones.png"},
	"ba.club_world_dining": {ID: "club_world_dining", Name: "Club World Dining", Icon: "Utensils", Description: "Gourmet dining with a British touch."},
	"ba.white_company":     {ID: "white_company", Name: "The White Company Bedding", Icon: "Moon", Description: "Luxurious bedding and amenity kits from The White Company."},
	"ba.club_suite":        {ID: "club_suite", Name: "Club Suite", Icon: "Armchair", Description: "Direct aisle access and a privacy door."},

	"emirates.arabic_coffee":     {ID: "arabic_coffee", Name: "Arabic Coffee & Dates", Icon: "Coffee", Description: "Traditional welcome with Arabic coffee and dates.", Items: []string{"Arabic Coffee", "Premium Dates"}, Image: "/images/emirates_dates.png"},
	"emirates.ice":               {ID: "ice", Name: "ice Entertainment", Icon: "Tv", Description: "Award-winning entertainment system with 6,500+ channels."},
	"emirates.first_class_suite": {ID: "first_class_suite", Name: "First Class Private Suite", Icon: "Armchair", Description: "Fully enclosed private suite with zero-gravity seat."},
	"emirates.shower_spa":        {ID: "shower_spa", Name: "Onboard Shower Spa", Icon: "Droplets", Description: "Rejuvenate in the A380 Shower Spa (First Class)."},
	"emirates.onboard_lounge":    {ID: "onboard_lounge", Name: "Onboard Lounge", Icon: "Martini", Description: "Socialize in the A380 Onboard Lounge."},
}

// GenericAmenities is the set used on synthesized flights.
func GenericAmenities() []*models.Amenity {
	return genericAmenities
}

// DefaultAmenities is the fallback for airlines without a dedicated set.
func DefaultAmenities() []*models.Amenity {
	return defaultAmenities
}

// AmenitiesForAirline returns the first set whose airline name is
// contained in name, or DefaultAmenities.
func AmenitiesForAirline(name string) []*models.Amenity {
	for _, set := range airlineAmenities {
		if strings.Contains(name, set.airline) {
			return set.amenities
		}
	}
	return defaultAmenities
}

// PremiumAmenity resolves a curated amenity reference such as
// "united.polaris_dining".
func PremiumAmenity(ref string) (*models.Amenity, bool) {
	a, ok := premiumAmenities[ref]
	return a, ok
}
