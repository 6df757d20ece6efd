package device

import "testing"

const (
	uaAndroid = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Mobile Safari/537.36"
	uaIPhone  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	uaIPad    = "Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Mobile/15E148 Safari/604.1"
	uaDesktop = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
	uaMac     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Safari/605.1.15"
	uaOpera   = "Opera/9.80 (J2ME/MIDP; Opera Mini/9.80 (S60; SymbOS); U; en) Presto/2.12 Version/12.16"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		TestName  string
		UserAgent string
		Expected  Type
	}{
		{"Android mobile #1", uaAndroid, MobileWithApp},
		{"iPhone #2", uaIPhone, MobileNoApp},
		{"iPad #3", uaIPad, MobileNoApp},
		{"Windows desktop #4", uaDesktop, Desktop},
		{"Mac desktop #5", uaMac, Desktop},
		{"Opera Mini, unknown platform #6", uaOpera, MobileNoApp},
		{"Empty user agent #7", "", Desktop},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			if got := Classify(tc.UserAgent); got != tc.Expected {
				t.Errorf("Classify(%q) = %v, want %v", tc.UserAgent, got, tc.Expected)
			}
		})
	}
}

func TestClassifyString(t *testing.T) {
	testCases := []struct {
		Type     Type
		Expected string
	}{
		{MobileWithApp, "mobile-with-upi"},
		{MobileNoApp, "mobile-no-upi"},
		{Desktop, "desktop"},
	}
	for _, tc := range testCases {
		if got := tc.Type.String(); got != tc.Expected {
			t.Errorf("String() = %q, want %q", got, tc.Expected)
		}
	}
}

func TestIsMobile(t *testing.T) {
	if !IsMobile(uaAndroid) {
		t.Errorf("Expected Android user agent to be mobile")
	}
	if !IsMobile("SOMETHING IPHONE UPPERCASE") {
		t.Errorf("Expected mobile token match to be case-insensitive")
	}
	if IsMobile(uaDesktop) {
		t.Errorf("Expected desktop user agent to not be mobile")
	}
}

func TestHasPaymentApp(t *testing.T) {
	if !HasPaymentApp(uaAndroid) {
		t.Errorf("Expected Android to be assumed to have a payment app")
	}
	// iOS is always treated as lacking a payment app, a known approximation
	if HasPaymentApp(uaIPhone) {
		t.Errorf("Expected iPhone to be assumed to lack a payment app")
	}
}
