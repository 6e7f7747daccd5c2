package assets

// Kind separates drawables from playables.
type Kind int

const (
	Image Kind = iota
	Sound
)

func (k Kind) String() string {
	if k == Sound {
		return "sound"
	}
	return "image"
}

// Item is one named asset.
type Item struct {
	Kind Kind
	Name string
}

// ImageNames lists every bitmap the game draws.
var ImageNames = []string{
	"splashpage", "background", "winscreen",
	"city", "fence", "ground",
	"textframe", "button", "terminal",
	"converyortop", "converyorwheel",
	"speedometer", "tachometer",
	"light", "lights1", "lights2", "lights3",
	"bigtruck", "trucklt", "trashpile", "crashscene",
	"crane1", "crane2", "fryer",
	"dog", "hand1", "hand2", "hand3",
	"bathtub", "bathtubsm", "cart", "cartsm", "chair", "chairsm",
	"toilet", "toiletsm", "washer", "washersm", "wagon", "wagonsm",
	"wheel1", "wheel1sm", "wheel2", "wheel2sm", "wheel3", "wheel3sm", "wheel4", "wheel4sm",
	"blower", "blowersm", "airconditioner", "airconditionersm",
	"coffee", "coffeesm", "fan", "fansm", "popcorn", "popcornsm",
}

// SoundNames lists every sample the game plays.
var SoundNames = []string{
	"assembly", "bluesharp", "crane", "crash", "crowd",
	"fryer", "hotrod", "meltdown", "ramp", "sewing",
}

// Manifest returns images first, then sounds.
func Manifest() []Item {
	items := make([]Item, 0, len(ImageNames)+len(SoundNames))
	for _, n := range ImageNames {
		items = append(items, Item{Kind: Image, Name: n})
	}
	for _, n := range SoundNames {
		items = append(items, Item{Kind: Sound, Name: n})
	}
	return items
}
