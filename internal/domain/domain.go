package domain

// 角色只有两种：租客 / 房东
type Role string

const (
	RoleTenant   Role = "tenant"
	RoleLandlord Role = "landlord"
)

// DateLayout 持久化里的日期格式（只保留日期部分）
const DateLayout = "2006-01-02"

const StatusAvailable = "available"

type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"` // bcrypt 哈希；会话/响应里必须剥离
	Role      Role   `json:"role"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"created_at"`
}

// Stripped 返回剥离密码后的副本（写会话、返回给前端前调用）
func (u *User) Stripped() *User {
	if u == nil {
		return nil
	}
	cp := *u
	cp.Password = ""
	return &cp
}

func (u *User) IsLandlord() bool { return u != nil && u.Role == RoleLandlord }
func (u *User) IsTenant() bool   { return u != nil && u.Role == RoleTenant }

type Property struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        int      `json:"price"` // 年租，奈拉整数
	Type         string   `json:"type"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	State        string   `json:"state"`
	City         string   `json:"city"`
	Area         string   `json:"area"`
	Address      string   `json:"address"`
	Images       []string `json:"images"`
	LandlordID   int64    `json:"landlord_id"`
	LandlordName string   `json:"landlord_name"` // 冗余快照，建档时从房东带过来
	Features     []string `json:"features"`
	Contact      string   `json:"contact"`
	CreatedAt    string   `json:"created_at"`
	Status       string   `json:"status"`
	Likes        []int64  `json:"likes"` // 点赞用户 id，最多出现一次
	Views        int      `json:"views"`
}

// Score 热度 = 浏览数 + 点赞数，featured 排序用
func (p *Property) Score() int { return p.Views + len(p.Likes) }

func (p *Property) LikedBy(uid int64) bool {
	for _, id := range p.Likes {
		if id == uid {
			return true
		}
	}
	return false
}
