package model

import "time"

// Profile is one-to-one with User, upserted by its owner only.
// Pref is an index into Prefectures (0 = unset).
type Profile struct {
	UserID    int64     `gorm:"primaryKey" json:"user_id"`
	FirstName string    `gorm:"type:varchar(64)" json:"first_name"`
	LastName  string    `gorm:"type:varchar(64)" json:"last_name"`
	Sex       string    `gorm:"type:varchar(8)" json:"sex"`
	Birthday  string    `gorm:"type:varchar(16)" json:"birthday"`
	Pref      int       `json:"pref"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }

// Prefectures maps a profile pref code to its display name; index 0 means unset.
var Prefectures = []string{
	"未入力",
	"北海道", "青森県", "岩手県", "宮城県", "秋田県", "山形県", "福島県", "茨城県", "栃木県", "群馬県", "埼玉県", "千葉県", "東京都", "神奈川県", "新潟県", "富山県",
	"石川県", "福井県", "山梨県", "長野県", "岐阜県", "静岡県", "愛知県", "三重県", "滋賀県", "京都府", "大阪府", "兵庫県", "奈良県", "和歌山県", "鳥取県", "島根県",
	"岡山県", "広島県", "山口県", "徳島県", "香川県", "愛媛県", "高知県", "福岡県", "佐賀県", "長崎県", "熊本県", "大分県", "宮崎県", "鹿児島県", "沖縄県",
}

// PrefectureName returns the display name for a pref code, or the unset
// placeholder when the code is out of range.
func PrefectureName(code int) string {
	if code < 0 || code >= len(Prefectures) {
		return Prefectures[0]
	}
	return Prefectures[code]
}
