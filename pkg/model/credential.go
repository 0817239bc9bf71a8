package model

// RADIUS属性名
const (
	AttrCleartextPassword = "Cleartext-Password"
	AttrCallingStationID  = "Calling-Station-Id"
	AttrFramedIPAddress   = "Framed-IP-Address"
)

// CredentialAttributes は認証ストアに書き込む加入者属性。
// 空文字のフィールドは「属性なし」を意味し、既存値は削除される。
// Password のみ例外で、空の場合は既存のパスワードを維持する。
type CredentialAttributes struct {
	Password         string // radcheck Cleartext-Password
	CallingStationID string // radcheck Calling-Station-Id（MACバインド）
	FramedIPAddress  string // radreply Framed-IP-Address
}

// CredentialAttributesFromCustomer は顧客の現在値から属性を生成する。
func CredentialAttributesFromCustomer(c *Customer) CredentialAttributes {
	if c == nil {
		return CredentialAttributes{}
	}
	return CredentialAttributes{
		Password:         c.NetworkPassword,
		CallingStationID: c.MACAddress,
		FramedIPAddress:  c.IPAddress,
	}
}
