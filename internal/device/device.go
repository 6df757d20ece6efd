package device

import "strings"

// Type - heuristic classification of the calling client
type Type int

const (
	// Desktop - not a mobile user agent
	Desktop Type = iota
	// MobileWithApp - mobile and Android-like, assumed to have a UPI app
	MobileWithApp
	// MobileNoApp - mobile but not Android-like (e.g. iOS)
	MobileNoApp
)

func (t Type) String() string {
	switch t {
	case MobileWithApp:
		return "mobile-with-upi"
	case MobileNoApp:
		return "mobile-no-upi"
	default:
		return "desktop"
	}
}

// mobile user agent tokens, checked case-insensitively
var mobileTokens = []string{"android", "webos", "iphone", "ipad", "ipod", "blackberry", "iemobile", "opera mini"}

// iOS device tokens, checked case-sensitively as browsers report them
var iosTokens = []string{"iPad", "iPhone", "iPod"}

// IsMobile reports whether the user agent looks like a mobile browser.
func IsMobile(userAgent string) bool {
	ua := strings.ToLower(userAgent)
	for _, token := range mobileTokens {
		if strings.Contains(ua, token) {
			return true
		}
	}
	return false
}

// HasPaymentApp reports whether the device is assumed to carry a UPI app.
// Android is assumed to have one, iOS and everything else is not. This is
// a heuristic, not a capability probe.
func HasPaymentApp(userAgent string) bool {
	if strings.Contains(strings.ToLower(userAgent), "android") {
		return true
	}
	for _, token := range iosTokens {
		if strings.Contains(userAgent, token) {
			return false
		}
	}
	return false
}

// Classify maps a user agent string to a device type.
func Classify(userAgent string) Type {
	if !IsMobile(userAgent) {
		return Desktop
	}
	if HasPaymentApp(userAgent) {
		return MobileWithApp
	}
	return MobileNoApp
}
