package templates

import (
	"fmt"
	"net/url"
)

// PhotoURL is the raw file endpoint for name.
func PhotoURL(name string) string {
	return fmt.Sprintf("/photos/%s", url.PathEscape(name))
}

// ViewURL is the detail page for name.
func ViewURL(name string) string {
	return fmt.Sprintf("/view/%s", url.PathEscape(name))
}
