package model

// NASエントリのデフォルト値
const (
	NasTypeMikrotik   = "mikrotik"
	NasDefaultPort    = 1812
	NasStatusActive   = "active"
	NasStatusInactive = "inactive"
)

// NasEntry はRADIUSサーバーに登録された認証クライアント（NAS）を表す。
// FreeRADIUS nasテーブルの1行に対応する。ルーター1台につき最大1件。
type NasEntry struct {
	ID          int64  `db:"id" json:"id"`
	RouterID    int64  `db:"router_id" json:"router_id"`
	Name        string `db:"name" json:"name"`
	NasName     string `db:"nasname" json:"nasname"` // デバイス識別子（ルーターの管理アドレス）
	ShortName   string `db:"shortname" json:"shortname"`
	Type        string `db:"type" json:"type"`
	Ports       int    `db:"ports" json:"ports"`
	Secret      string `db:"secret" json:"-"`
	Status      string `db:"status" json:"status"`
	Description string `db:"description" json:"description"`
}

// NasPatch はNASエントリの部分更新内容を表す。nilのフィールドは更新しない。
type NasPatch struct {
	NasName *string
	Secret  *string
	Status  *string
}

// IsEmpty は更新対象フィールドがないかを返す。
func (p NasPatch) IsEmpty() bool {
	return p.NasName == nil && p.Secret == nil && p.Status == nil
}

// Fields は更新対象のフィールド名を返す。
func (p NasPatch) Fields() []string {
	var fields []string
	if p.NasName != nil {
		fields = append(fields, "nasname")
	}
	if p.Secret != nil {
		fields = append(fields, "secret")
	}
	if p.Status != nil {
		fields = append(fields, "status")
	}
	return fields
}

// Apply はパッチ内容をエントリに反映した複製を返す。
func (p NasPatch) Apply(e NasEntry) NasEntry {
	if p.NasName != nil {
		e.NasName = *p.NasName
	}
	if p.Secret != nil {
		e.Secret = *p.Secret
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	return e
}
