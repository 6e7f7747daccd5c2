package part

// Inventory is the stock junkyard.
var Inventory = []Part{
	{ID: "bathtub", Category: Chassis, Name: "Bathtub", Rating: 35, Prices: [2]*int{nil, price(21)},
		Attachments: &Attachments{WheelLeft: Offset{-83, 61}, WheelRight: Offset{81, 65}, Engine: Offset{-116, -17}}},
	{ID: "cart", Category: Chassis, Name: "Shopping Cart", Rating: 22, Prices: [2]*int{price(13), price(13)},
		Attachments: &Attachments{WheelLeft: Offset{-66, 52}, WheelRight: Offset{62, 51}, Engine: Offset{-76, -57}}},
	{ID: "chair", Category: Chassis, Name: "Recliner", Rating: 40, Prices: [2]*int{nil, price(25)},
		Attachments: &Attachments{WheelLeft: Offset{-63, 68}, WheelRight: Offset{34, 74}, Engine: Offset{-103, -55}}},
	{ID: "toilet", Category: Chassis, Name: "Toilet", Rating: 18, Prices: [2]*int{price(8), price(8)},
		Attachments: &Attachments{WheelLeft: Offset{-13, 54}, WheelRight: Offset{54, 54}, Engine: Offset{-51, -48}}},
	{ID: "washer", Category: Chassis, Name: "Washer", Rating: 30, Prices: [2]*int{nil, price(17)},
		Attachments: &Attachments{WheelLeft: Offset{-51, 62}, WheelRight: Offset{30, 62}, Engine: Offset{-66, -50}}},
	{ID: "wagon", Category: Chassis, Name: "Wagon", Rating: 20, Prices: [2]*int{price(10), price(10)},
		Attachments: &Attachments{WheelLeft: Offset{-28, 40}, WheelRight: Offset{37, 40}, Engine: Offset{-68, -30}}},

	{ID: "wheel1", Category: Wheels, Name: "Go-Cart Tires", Rating: 9, Prices: [2]*int{price(3), price(3)}},
	{ID: "wheel2", Category: Wheels, Name: "Knobby Tires", Rating: 20, Prices: [2]*int{nil, price(15)}},
	{ID: "wheel3", Category: Wheels, Name: "White Walls", Rating: 15, Prices: [2]*int{nil, price(10)}},
	{ID: "wheel4", Category: Wheels, Name: "Bicycle Tires", Rating: 12, Prices: [2]*int{price(5), price(5)}},

	{ID: "blower", Category: Engine, Name: "Hair Blower", Rating: 17, Prices: [2]*int{nil, price(12)}},
	{ID: "airconditioner", Category: Engine, Name: "Air Conditioner", Rating: 18, Prices: [2]*int{nil, price(15)}},
	{ID: "coffee", Category: Engine, Name: "Coffee Maker", Rating: 12, Prices: [2]*int{price(7), price(7)}},
	{ID: "fan", Category: Engine, Name: "Ceiling Fan", Rating: 20, Prices: [2]*int{nil, price(19)}},
	{ID: "popcorn", Category: Engine, Name: "Popcorn Popper", Rating: 13, Prices: [2]*int{price(9), price(9)}},
}

// DefaultCatalog returns a catalog of the stock inventory.
func DefaultCatalog() *Catalog {
	return NewCatalog(Inventory)
}
