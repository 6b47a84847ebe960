package contracts

import "context"

// BrowserPage is the slice of a browser tab the booking form driver needs.
type BrowserPage interface {
	Click(selector string) error
	Fill(selector, value string) error
	Press(selector, key string) error
	SelectOption(selector, value string) error
	InnerText(selector string) (string, error)
}

// BrowserSession is a launched, navigated browser that owns its resources.
type BrowserSession interface {
	BrowserPage
	Close() error
}

type SessionStarter interface {
	StartSession(ctx context.Context) (BrowserSession, error)
}
