package browser

import (
	"context"
	"cura-booking-service/internal/app/config"
	"cura-booking-service/internal/app/contracts"
	"cura-booking-service/internal/pkg/constvars"
	"cura-booking-service/internal/pkg/exceptions"
	"io"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

type playwrightLauncher struct {
	Config config.Browser
	URL    string
	Log    *zap.Logger
}

func NewPlaywrightLauncher(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.SessionStarter {
	return &playwrightLauncher{
		Config: driverConfig.Browser,
		URL:    internalConfig.Booking.URL,
		Log:    logger,
	}
}

// launchOptions carries the flags that keep the demo page from flagging the
// session as automated.
func launchOptions(cfg config.Browser) playwright.BrowserTypeLaunchOptions {
	return playwright.BrowserTypeLaunchOptions{
		Headless:          playwright.Bool(cfg.Headless),
		Args:              constvars.BrowserLaunchArgs,
		IgnoreDefaultArgs: constvars.BrowserIgnoreDefaultArgs,
	}
}

func contextOptions(cfg config.Browser) playwright.BrowserNewContextOptions {
	// --start-maximized only takes effect when playwright does not pin a viewport.
	return playwright.BrowserNewContextOptions{
		NoViewport: playwright.Bool(!cfg.Headless),
	}
}

func (l *playwrightLauncher) StartSession(ctx context.Context) (contracts.BrowserSession, error) {
	runID, _ := ctx.Value(constvars.CONTEXT_RUN_ID_KEY).(string)

	l.Log.Info("playwrightLauncher.StartSession called",
		zap.String(constvars.LoggingRunIDKey, runID),
		zap.String(constvars.LoggingURLKey, l.URL),
		zap.Bool("headless", l.Config.Headless),
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runOptions := &playwright.RunOptions{
		Browsers: []string{"chromium"},
		Verbose:  false,
		Stdout:   io.Discard,
		Stderr:   io.Discard,
	}

	if l.Config.Install {
		if err := playwright.Install(runOptions); err != nil {
			l.Log.Error("playwrightLauncher.StartSession error installing playwright",
				zap.String(constvars.LoggingRunIDKey, runID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPlaywrightInstall(err)
		}
	}

	pw, err := playwright.Run(runOptions)
	if err != nil {
		l.Log.Error("playwrightLauncher.StartSession error starting playwright",
			zap.String(constvars.LoggingRunIDKey, runID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPlaywrightRun(err)
	}
	session := &Session{playwright: pw}

	session.Browser, err = pw.Chromium.Launch(launchOptions(l.Config))
	if err != nil {
		session.Close()
		l.Log.Error("playwrightLauncher.StartSession error launching chromium",
			zap.String(constvars.LoggingRunIDKey, runID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBrowserLaunch(err)
	}

	session.Context, err = session.Browser.NewContext(contextOptions(l.Config))
	if err != nil {
		session.Close()
		return nil, exceptions.ErrBrowserContext(err)
	}

	session.Page, err = session.Context.NewPage()
	if err != nil {
		session.Close()
		return nil, exceptions.ErrBrowserPage(err)
	}
	session.Page.SetDefaultTimeout(l.Config.TimeoutInSeconds * 1000)

	waitUntil := playwright.WaitUntilState("load")
	_, err = session.Page.Goto(l.URL, playwright.PageGotoOptions{WaitUntil: &waitUntil})
	if err != nil {
		session.Close()
		l.Log.Error("playwrightLauncher.StartSession error navigating",
			zap.String(constvars.LoggingRunIDKey, runID),
			zap.String(constvars.LoggingURLKey, l.URL),
			zap.Error(err),
		)
		return nil, exceptions.ErrBrowserNavigate(err, l.URL)
	}

	l.Log.Info("playwrightLauncher.StartSession succeeded",
		zap.String(constvars.LoggingRunIDKey, runID),
		zap.String(constvars.LoggingURLKey, session.Page.URL()),
	)
	return session, nil
}
