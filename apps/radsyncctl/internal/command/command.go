// Package command はradsyncctlのサブコマンドを提供する。
package command

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/oyaguma3/radsync/apps/radsyncctl/internal/apiclient"
)

// Options は全サブコマンド共通のオプション
type Options struct {
	APIURL  string        `long:"api-url" env:"RADSYNC_API_URL" default:"http://localhost:8080" description:"sync-server base URL"`
	Timeout time.Duration `long:"timeout" env:"RADSYNC_TIMEOUT" default:"10s" description:"API request timeout"`
}

// App はサブコマンドが共有する実行環境
type App struct {
	Options
	out io.Writer
	now func() time.Time
}

// NewParser はサブコマンドを登録したパーサーを生成する。
func NewParser(out io.Writer) *flags.Parser {
	return newParser(&App{out: out, now: time.Now})
}

func newParser(app *App) *flags.Parser {
	parser := flags.NewParser(&app.Options, flags.Default)

	commands := []struct {
		name  string
		short string
		data  any
	}{
		{"decode", "Decode a subscriber metadata comment", &DecodeCommand{app: app}},
		{"encode", "Encode a subscriber metadata comment", &EncodeCommand{app: app}},
		{"detect", "Detect the metadata comment format", &DetectCommand{app: app}},
		{"presence", "Show online status of a subscriber", &PresenceCommand{app: app}},
		{"usage", "Show traffic totals of a subscriber", &UsageCommand{app: app}},
		{"classify", "Split usernames into online and offline", &ClassifyCommand{app: app}},
		{"failures", "List recent synchronization failures", &FailuresCommand{app: app}},
		{"nas", "List registered NAS entries", &NasCommand{app: app}},
	}
	for _, c := range commands {
		// 登録失敗はタグ定義の誤りのみ
		if _, err := parser.AddCommand(c.name, c.short, c.short, c.data); err != nil {
			panic(err)
		}
	}
	return parser
}

func (a *App) client() *apiclient.Client {
	return apiclient.NewClient(a.APIURL, a.Timeout)
}

func (a *App) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), a.Timeout+time.Second)
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
