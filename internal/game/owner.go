package game

// Owner tags which side controls a tower or troop.
type Owner int

const (
	Neutral Owner = iota
	Player
	Enemy
)

func (o Owner) String() string {
	switch o {
	case Neutral:
		return "neutral"
	case Player:
		return "player"
	case Enemy:
		return "enemy"
	default:
		return "unknown"
	}
}

func (o Owner) valid() bool {
	return o == Neutral || o == Player || o == Enemy
}

// ownerSpeedMult scales troop movement speed per owner.
// Player units carry a morale edge, enemy units a smaller aggression edge.
var ownerSpeedMult = [3]float64{
	Neutral: 1.00,
	Player:  1.10,
	Enemy:   1.05,
}
