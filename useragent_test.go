package saucedemo

import (
	"errors"
	"runtime"
	"testing"

	"github.com/go-rod/rod/lib/proto"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestUserAgent(t *testing.T) {
	tests := []struct {
		name      string
		webkitVer string
		chromeVer string
		goos      string
		want      string
	}{
		{
			name: "linux defaults",
			goos: "linux",
			want: `Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/129.0.0.0 Safari/537.36`,
		},
		{
			name:      "mac, chrome pinned",
			chromeVer: "130.0.0.0",
			goos:      "darwin",
			want:      `Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/130.0.0.0 Safari/537.36`,
		},
		{
			name:      "windows, both pinned",
			webkitVer: "605.1.15",
			chromeVer: "131.0.6778.86",
			goos:      "windows",
			want:      `Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/605.1.15 (KHTML, like Gecko) Chrome/131.0.6778.86 Safari/605.1.15`,
		},
		{
			name: "unknown os passes for linux",
			goos: "plan9",
			want: `Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/129.0.0.0 Safari/537.36`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserAgent(tt.webkitVer, tt.chromeVer, userAgentOS(tt.goos)))
		})
	}
}

// TestWithUserAgent checks that the user agent given to the client reaches
// the pages it opens.
func TestWithUserAgent(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		expect  func(*MockuserAgentSetter)
		wantErr bool
	}{
		{
			name:   "not set, browser default",
			expect: func(*MockuserAgentSetter) {},
		},
		{
			name:   "empty keeps browser default",
			opts:   []Option{WithUserAgent("")},
			expect: func(*MockuserAgentSetter) {},
		},
		{
			name: "default for this os",
			opts: []Option{WithUserAgent(DefaultUserAgent())},
			expect: func(m *MockuserAgentSetter) {
				m.EXPECT().SetUserAgent(&proto.NetworkSetUserAgentOverride{
					UserAgent: UserAgent("", "", userAgentOS(runtime.GOOS)),
				}).Return(nil)
			},
		},
		{
			name: "custom",
			opts: []Option{WithUserAgent(DefaultUserAgent()), WithUserAgent("sauce-bot/1.0")},
			expect: func(m *MockuserAgentSetter) {
				m.EXPECT().SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: "sauce-bot/1.0"}).Return(nil)
			},
		},
		{
			name: "page refuses",
			opts: []Option{WithUserAgent("sauce-bot/1.0")},
			expect: func(m *MockuserAgentSetter) {
				m.EXPECT().SetUserAgent(gomock.Any()).Return(errors.New("target closed"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := NewMockuserAgentSetter(ctrl)
			tt.expect(m)

			var o options
			o.apply(tt.opts)
			err := o.setUserAgent(m)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
