package space

type Type string

const (
	TypePrivateRoom Type = "private_room"
	TypeOpenArea    Type = "open_area"
	TypeClassStudio Type = "class_studio"
	TypeBoxingRing  Type = "boxing_ring"
	TypeCardioZone  Type = "cardio_zone"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypePrivateRoom, TypeOpenArea, TypeClassStudio, TypeBoxingRing, TypeCardioZone:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}
