package command

import (
	"fmt"
	"strconv"
	"time"

	"github.com/oyaguma3/radsync/pkg/comment"
	"github.com/oyaguma3/radsync/pkg/model"
)

// DecodeCommand はメタデータ文字列を解析して表示する。
type DecodeCommand struct {
	app  *App
	Args struct {
		Blob string `positional-arg-name:"comment" required:"yes"`
	} `positional-args:"yes"`
}

type decodeOutput struct {
	Format     string            `json:"format"`
	Fields     map[string]string `json:"fields"`
	CustomerID *int64            `json:"customer_id,omitempty"`
	Contact    string            `json:"contact,omitempty"`
	Expired    bool              `json:"expired"`
}

// Execute はflags.Commanderを実装する。
func (c *DecodeCommand) Execute(_ []string) error {
	blob := c.Args.Blob
	md, format, _ := comment.Parse(blob)

	out := decodeOutput{
		Format:  format.String(),
		Fields:  md,
		Expired: comment.IsExpired(blob, c.app.now()),
	}
	if id, ok := comment.ExtractIdentity(blob); ok {
		out.CustomerID = &id
	}
	if contact, ok := comment.ExtractContact(blob); ok {
		out.Contact = contact
	}
	return c.app.printJSON(out)
}

// DetectCommand はメタデータ文字列の形式名を表示する。
type DetectCommand struct {
	app  *App
	Args struct {
		Blob string `positional-arg-name:"comment" required:"yes"`
	} `positional-args:"yes"`
}

// Execute はflags.Commanderを実装する。
func (c *DetectCommand) Execute(_ []string) error {
	_, err := fmt.Fprintln(c.app.out, comment.DetectFormat(c.Args.Blob))
	return err
}

// EncodeCommand は指定値からメタデータ文字列を生成する。
// --legacy 指定時はレガシー形式（username|uid|pkg|exp|service）で出力する。
type EncodeCommand struct {
	app        *App
	CustomerID string `long:"uid" description:"customer id"`
	NetworkID  string `long:"nid" description:"network user id"`
	Name       string `long:"name" description:"display name"`
	Mobile     string `long:"mobile" description:"contact number"`
	ZoneID     string `long:"zone" description:"zone id"`
	PackageID  string `long:"pkg" description:"package id"`
	Expiry     string `long:"exp" description:"expiry date (YYYY-MM-DD)"`
	Status     string `long:"status" description:"subscriber status"`
	Legacy     bool   `long:"legacy" description:"output the legacy pipe-delimited format"`
	Username   string `long:"username" description:"network username (legacy only)"`
	Service    string `long:"service" description:"service type (legacy only, default pppoe)"`
}

// Execute はflags.Commanderを実装する。
func (c *EncodeCommand) Execute(_ []string) error {
	f := comment.Fields{
		Name:   c.Name,
		Mobile: c.Mobile,
		Status: c.Status,
	}

	var err error
	if f.CustomerID, err = optionalID("uid", c.CustomerID); err != nil {
		return err
	}
	if f.NetworkID, err = optionalID("nid", c.NetworkID); err != nil {
		return err
	}
	if f.ZoneID, err = optionalID("zone", c.ZoneID); err != nil {
		return err
	}
	if f.PackageID, err = optionalID("pkg", c.PackageID); err != nil {
		return err
	}
	if c.Expiry != "" {
		t, err := time.Parse(time.DateOnly, c.Expiry)
		if err != nil {
			return fmt.Errorf("invalid --exp: %w", err)
		}
		f.Expiry = &t
	}

	if c.Legacy {
		_, err = fmt.Fprintln(c.app.out, comment.BuildLegacy(legacyCustomer(c, f)))
		return err
	}

	_, err = fmt.Fprintln(c.app.out, comment.Encode(f))
	return err
}

func legacyCustomer(c *EncodeCommand, f comment.Fields) *model.Customer {
	cust := &model.Customer{
		Username:    c.Username,
		ServiceType: c.Service,
		PackageID:   f.PackageID,
		ExpiryDate:  f.Expiry,
	}
	if f.CustomerID != nil {
		cust.ID = *f.CustomerID
	}
	return cust
}

func optionalID(name, raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return &id, nil
}
