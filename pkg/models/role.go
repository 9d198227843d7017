package models

type Role uint8

const (
	RoleMaker Role = iota
	RoleTaker
)

var roleTable = newEnumTable("role", "maker", "taker")

func (r Role) String() string {
	return roleTable.str(uint8(r))
}

func (r Role) MarshalJSON() ([]byte, error) {
	return roleTable.marshal(uint8(r))
}

func (r *Role) UnmarshalJSON(data []byte) error {
	v, err := roleTable.unmarshal(data)
	if err != nil {
		return err
	}
	*r = Role(v)
	return nil
}

func RoleStrToType(value string) (Role, error) {
	v, err := roleTable.parse(value)
	return Role(v), err
}
