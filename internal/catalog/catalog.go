// Package catalog holds the static services and fleet catalog shown on
// the public site. Pricing is per vehicle segment and booking kind.
package catalog

type LocalPricing struct {
	Pack    string  `json:"pack"`
	Base    float64 `json:"base"`
	ExtraKM float64 `json:"extraKm"`
	ExtraHr float64 `json:"extraHr"`
}

type OutstationPricing struct {
	PerKM    float64 `json:"perKm"`
	MinKMDay int     `json:"minKmDay"`
	Driver   float64 `json:"driver"`
	Night    float64 `json:"night"`
}

type AirportPricing struct {
	Pickup       float64 `json:"pickup"`
	Drop         float64 `json:"drop"`
	WaitingPerHr float64 `json:"waitingPerHr"`
}

type Pricing struct {
	Local      LocalPricing      `json:"local"`
	Outstation OutstationPricing `json:"outstation"`
	Airport    AirportPricing    `json:"airport"`
	Corporate  string            `json:"corporate"`
	Custom     string            `json:"custom"`
}

// Segment is one vehicle class offered on the booking form.
type Segment struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Desc    string   `json:"desc"`
	Cars    []string `json:"cars"`
	Pricing Pricing  `json:"pricing"`
}

// Service is one booking kind the site sells.
type Service struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Blurb string `json:"blurb"`
}

const (
	corporateNote = "Monthly billing on request, GST 18%"
	customNote    = "Tailored itinerary & hours. Get a quick estimate."
)

var Services = []Service{
	{ID: "local-tour", Title: "Local Tour", Blurb: "8hr / 80km packages inside the city."},
	{ID: "outstation", Title: "Outstation", Blurb: "Per-km billing with flexible days."},
	{ID: "airport-transfer", Title: "Airport Transfer", Blurb: "On-time pickups & drops, 24x7."},
	{ID: "corporate", Title: "Corporate Bookings", Blurb: "Dedicated chauffeurs & monthly invoicing."},
	{ID: "custom", Title: "Custom Bookings", Blurb: "Design your trip your way."},
}

var Segments = []Segment{
	{
		ID:    "hatchback",
		Label: "Hatchback",
		Desc:  "Compact, easy to maneuver, perfect for city trips.",
		Cars:  []string{"Maruti Suzuki Swift", "Tata Tiago", "Maruti Suzuki Baleno", "Hyundai i20"},
		Pricing: Pricing{
			Local:      LocalPricing{Pack: "8Hrs / 80KM", Base: 1699, ExtraKM: 12, ExtraHr: 150},
			Outstation: OutstationPricing{PerKM: 12.5, MinKMDay: 300, Driver: 300, Night: 300},
			Airport:    AirportPricing{Pickup: 899, Drop: 899, WaitingPerHr: 150},
			Corporate:  corporateNote,
			Custom:     customNote,
		},
	},
	{
		ID:    "sedan",
		Label: "Sedan",
		Desc:  "Comfortable family sedan with separate boot.",
		Cars:  []string{"Honda City", "Hyundai Verna", "Skoda Slavia", "Volkswagen Virtus"},
		Pricing: Pricing{
			Local:      LocalPricing{Pack: "8Hrs / 80KM", Base: 2199, ExtraKM: 14, ExtraHr: 200},
			Outstation: OutstationPricing{PerKM: 14.5, MinKMDay: 300, Driver: 300, Night: 300},
			Airport:    AirportPricing{Pickup: 1199, Drop: 1199, WaitingPerHr: 200},
			Corporate:  corporateNote,
			Custom:     customNote,
		},
	},
	{
		ID:    "prime-sedan",
		Label: "Prime Sedan",
		Desc:  "Premium trims for executive comfort and features.",
		Cars:  []string{"Honda City ZX", "Hyundai Verna SX(O)", "Maruti Suzuki Ciaz"},
		Pricing: Pricing{
			Local:      LocalPricing{Pack: "8Hrs / 80KM", Base: 2599, ExtraKM: 16, ExtraHr: 250},
			Outstation: OutstationPricing{PerKM: 16.5, MinKMDay: 300, Driver: 300, Night: 300},
			Airport:    AirportPricing{Pickup: 1499, Drop: 1499, WaitingPerHr: 250},
			Corporate:  corporateNote,
			Custom:     customNote,
		},
	},
	{
		ID:    "suv",
		Label: "SUV",
		Desc:  "Higher ground clearance, great for rough roads and long trips.",
		Cars:  []string{"Hyundai Creta", "Kia Seltos", "Maruti Suzuki Brezza", "Maruti Ertiga"},
		Pricing: Pricing{
			Local:      LocalPricing{Pack: "8Hrs / 80KM", Base: 2799, ExtraKM: 18, ExtraHr: 300},
			Outstation: OutstationPricing{PerKM: 17.5, MinKMDay: 300, Driver: 300, Night: 300},
			Airport:    AirportPricing{Pickup: 1599, Drop: 1599, WaitingPerHr: 300},
			Corporate:  corporateNote,
			Custom:     customNote,
		},
	},
	{
		ID:    "prime-suv",
		Label: "Prime SUV",
		Desc:  "Spacious & luxurious SUVs with advanced features.",
		Cars:  []string{"Toyota Innova Hycross", "Toyota Innova Crysta", "Toyota Fortuner", "Kia Carens"},
		Pricing: Pricing{
			Local:      LocalPricing{Pack: "8Hrs / 80KM", Base: 3599, ExtraKM: 22, ExtraHr: 400},
			Outstation: OutstationPricing{PerKM: 22.5, MinKMDay: 300, Driver: 400, Night: 400},
			Airport:    AirportPricing{Pickup: 1999, Drop: 1999, WaitingPerHr: 350},
			Corporate:  corporateNote,
			Custom:     customNote,
		},
	},
}
