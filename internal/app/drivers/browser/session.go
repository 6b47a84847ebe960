package browser

import (
	"errors"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Session is one launched Chromium with a single page. It owns every resource
// it holds and releases them in reverse order on Close.
type Session struct {
	playwright *playwright.Playwright
	Browser    playwright.Browser
	Context    playwright.BrowserContext
	Page       playwright.Page
}

func (s *Session) Click(selector string) error {
	if err := s.Page.Click(selector); err != nil {
		return fmt.Errorf("click failed: %w", err)
	}
	return nil
}

func (s *Session) Fill(selector, value string) error {
	if err := s.Page.Fill(selector, value); err != nil {
		return fmt.Errorf("fill failed: %w", err)
	}
	return nil
}

func (s *Session) Press(selector, key string) error {
	if err := s.Page.Press(selector, key); err != nil {
		return fmt.Errorf("press failed: %w", err)
	}
	return nil
}

func (s *Session) SelectOption(selector, value string) error {
	values := []string{value}
	selected, err := s.Page.SelectOption(selector, playwright.SelectOptionValues{Values: &values})
	if err != nil {
		return fmt.Errorf("select failed: %w", err)
	}
	if len(selected) == 0 {
		return fmt.Errorf("select failed: no option with value %q", value)
	}
	return nil
}

func (s *Session) InnerText(selector string) (string, error) {
	text, err := s.Page.InnerText(selector)
	if err != nil {
		return "", fmt.Errorf("text extraction failed: %w", err)
	}
	return text, nil
}

func (s *Session) Close() error {
	var errs []error
	if s.Page != nil {
		if err := s.Page.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close page: %w", err))
		}
	}
	if s.Context != nil {
		if err := s.Context.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close context: %w", err))
		}
	}
	if s.Browser != nil {
		if err := s.Browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close browser: %w", err))
		}
	}
	if s.playwright != nil {
		if err := s.playwright.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop playwright: %w", err))
		}
	}
	return errors.Join(errs...)
}
