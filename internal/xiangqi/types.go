package xiangqi

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Black  Side = 1
)

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// Opponent 返回对方；NoSide 原样返回
func (s Side) Opponent() Side {
	return opposite(s)
}

type PieceType int8

const (
	PieceNone     PieceType = iota
	PieceGeneral            // 帅 / 将
	PieceAdvisor            // 仕 / 士
	PieceElephant           // 相 / 象
	PieceHorse              // 马 / 馬
	PieceChariot            // 车 / 車
	PieceCannon             // 炮 / 砲
	PieceSoldier            // 兵 / 卒
)

const numPieceTypes = 8 // 含 PieceNone

var pieceTypeNames = [numPieceTypes]string{
	"none", "general", "advisor", "elephant", "horse", "chariot", "cannon", "soldier",
}

// 红黑两套字只是显示用
var pieceLabels = [2][numPieceTypes]string{
	{"", "帅", "仕", "相", "马", "车", "炮", "兵"},
	{"", "将", "士", "象", "馬", "車", "砲", "卒"},
}

func (pt PieceType) String() string {
	if pt < 0 || int(pt) >= numPieceTypes {
		return "invalid"
	}
	return pieceTypeNames[pt]
}

// Label 棋子在某一方的显示字
func (pt PieceType) Label(side Side) string {
	if pt <= PieceNone || int(pt) >= numPieceTypes || (side != Red && side != Black) {
		return ""
	}
	return pieceLabels[side][pt]
}

// PieceID 是棋子在 Position.Pieces 里的下标，整局不变
type PieceID int8

const NoPiece PieceID = -1

// Piece 只有 X/Y/HasMoved/Alive 会变
type Piece struct {
	ID       PieceID   `json:"id"`
	Type     PieceType `json:"type"`
	Side     Side      `json:"side"`
	X        int8      `json:"x"`
	Y        int8      `json:"y"`
	HasMoved bool      `json:"has_moved"`
	Alive    bool      `json:"-"`
}

func (p Piece) Square() Square {
	return Square{X: int(p.X), Y: int(p.Y)}
}

type Square struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Move struct {
	Piece PieceID `json:"piece"`
	From  Square  `json:"from"`
	To    Square  `json:"to"`
}
