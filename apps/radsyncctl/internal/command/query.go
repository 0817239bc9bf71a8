package command

import (
	"fmt"
	"text/tabwriter"

	"github.com/oyaguma3/radsync/apps/radsyncctl/internal/apiclient"
	"github.com/oyaguma3/radsync/apps/radsyncctl/internal/format"
)

// descriptionWidth はNAS一覧の説明欄の表示幅
const descriptionWidth = 40

// PresenceCommand は加入者の接続状態を表示する。
type PresenceCommand struct {
	app     *App
	History int  `long:"history" description:"also show the last N sessions"`
	Text    bool `long:"text" description:"print a one-line summary instead of JSON"`
	Args    struct {
		Username string `positional-arg-name:"username" required:"yes"`
	} `positional-args:"yes"`
}

// Execute はflags.Commanderを実装する。
func (c *PresenceCommand) Execute(_ []string) error {
	ctx, cancel := c.app.requestContext()
	defer cancel()

	cl := c.app.client()
	resp, err := cl.Presence(ctx, c.Args.Username)
	if err != nil {
		return err
	}
	if c.Text {
		if err := printPresence(c.app, resp); err != nil {
			return err
		}
	} else if err := c.app.printJSON(resp); err != nil {
		return err
	}
	if c.History <= 0 {
		return nil
	}

	hist, err := cl.History(ctx, c.Args.Username, c.History)
	if err != nil {
		return err
	}
	return c.app.printJSON(hist)
}

func printPresence(app *App, resp *apiclient.PresenceResponse) error {
	if !resp.Online || resp.Session == nil {
		_, err := fmt.Fprintf(app.out, "%s offline\n", resp.Username)
		return err
	}
	_, err := fmt.Fprintf(app.out, "%s online for %s via %s (session %s)\n",
		resp.Username,
		format.Duration(resp.DurationSeconds),
		resp.Session.NasIPAddress,
		resp.Session.AcctSessionID,
	)
	return err
}

// UsageCommand は期間内の通信量を表示する。
type UsageCommand struct {
	app  *App
	From string `long:"from" description:"start (RFC3339 or YYYY-MM-DD)"`
	To   string `long:"to" description:"end (RFC3339 or YYYY-MM-DD)"`
	Args struct {
		Username string `positional-arg-name:"username" required:"yes"`
	} `positional-args:"yes"`
}

// Execute はflags.Commanderを実装する。
func (c *UsageCommand) Execute(_ []string) error {
	ctx, cancel := c.app.requestContext()
	defer cancel()

	u, err := c.app.client().Usage(ctx, c.Args.Username, c.From, c.To)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.app.out, "%s %s .. %s upload=%s download=%s total=%s\n",
		u.Username, u.From, u.To,
		format.Bytes(u.Upload), format.Bytes(u.Download), format.Bytes(u.Total),
	)
	return err
}

// ClassifyCommand はユーザー名をオンライン・オフラインに分類する。
type ClassifyCommand struct {
	app  *App
	Args struct {
		Usernames []string `positional-arg-name:"username" required:"1"`
	} `positional-args:"yes"`
}

// Execute はflags.Commanderを実装する。
func (c *ClassifyCommand) Execute(_ []string) error {
	ctx, cancel := c.app.requestContext()
	defer cancel()

	resp, err := c.app.client().Classify(ctx, c.Args.Usernames)
	if err != nil {
		return err
	}
	return c.app.printJSON(resp)
}

// FailuresCommand は直近の同期失敗を表示する。
type FailuresCommand struct {
	app   *App
	Limit int `long:"limit" default:"50" description:"maximum number of entries"`
}

// Execute はflags.Commanderを実装する。
func (c *FailuresCommand) Execute(_ []string) error {
	if c.Limit < 0 {
		return fmt.Errorf("--limit must not be negative")
	}
	ctx, cancel := c.app.requestContext()
	defer cancel()

	resp, err := c.app.client().Failures(ctx, c.Limit)
	if err != nil {
		return err
	}
	return c.app.printJSON(resp)
}

// NasCommand は登録済みNASエントリを表示する。
type NasCommand struct {
	app  *App
	JSON bool `long:"json" description:"print JSON instead of a table"`
}

// Execute はflags.Commanderを実装する。
func (c *NasCommand) Execute(_ []string) error {
	ctx, cancel := c.app.requestContext()
	defer cancel()

	resp, err := c.app.client().ListNas(ctx)
	if err != nil {
		return err
	}
	if c.JSON {
		return c.app.printJSON(resp)
	}

	w := tabwriter.NewWriter(c.app.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tROUTER\tNASNAME\tSHORTNAME\tSTATUS\tDESCRIPTION")
	for _, e := range resp.Entries {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\n",
			e.ID, e.RouterID, e.NasName, e.ShortName, e.Status, format.Truncate(e.Description, descriptionWidth))
	}
	return w.Flush()
}
