package config

import (
	"github.com/goodsign/monday"
	"github.com/spf13/viper"
)

var (
	KeyServerAddress    = "server.address"
	KeyContentDirectory = "content.directory"
	KeyBuildDirectory   = "build.directory"
	KeyMaxFilterTags    = "build.max-filter-tags"
	KeyContactEmail     = "site.contact-email"
	KeyLocale           = "site.locale"
	KeyBasePath         = "site.base-path"
	KeyLogo             = "site.logo"
	KeyAppStoreLink     = "links.app-store"
	KeyBetaGroupLink    = "links.beta-group"
	KeyGitHubLink       = "links.github"
	KeyEditor           = "tools.editor"
)

// SetDefaults registers the defaults of every key with viper.
func SetDefaults() {
	viper.SetDefault(KeyServerAddress, DefaultServerAddress())
	viper.SetDefault(KeyBuildDirectory, DefaultBuildDirectory())
	viper.SetDefault(KeyMaxFilterTags, DefaultMaxFilterTags())
	viper.SetDefault(KeyLocale, string(DefaultLocale()))
	viper.SetDefault(KeyBasePath, DefaultBasePath())
}

func ServerAddress() string {
	return viper.GetString(KeyServerAddress)
}

// HasContentDirectory reports whether posts and studio copy are read from
// disk instead of the embedded content.
func HasContentDirectory() bool {
	return viper.GetString(KeyContentDirectory) != ""
}

func ContentDirectory() string {
	return viper.GetString(KeyContentDirectory)
}

func BuildDirectory() string {
	return viper.GetString(KeyBuildDirectory)
}

func MaxFilterTags() int {
	return viper.GetInt(KeyMaxFilterTags)
}

func ContactEmail() string {
	return viper.GetString(KeyContactEmail)
}

func Locale() monday.Locale {
	return monday.Locale(viper.GetString(KeyLocale))
}

func BasePath() string {
	return viper.GetString(KeyBasePath)
}

func HasLogo() bool {
	return viper.GetString(KeyLogo) != ""
}

func Logo() string {
	return viper.GetString(KeyLogo)
}

func AppStoreLink() string {
	return viper.GetString(KeyAppStoreLink)
}

func BetaGroupLink() string {
	return viper.GetString(KeyBetaGroupLink)
}

func GitHubLink() string {
	return viper.GetString(KeyGitHubLink)
}

func HasEditor() bool {
	return viper.IsSet(KeyEditor)
}

func Editor() string {
	return viper.GetString(KeyEditor)
}

func DefaultServerAddress() string {
	return ":8000"
}

func DefaultBuildDirectory() string {
	return "public"
}

func DefaultMaxFilterTags() int {
	return 10
}

func DefaultLocale() monday.Locale {
	return monday.LocaleEnUS
}

func DefaultBasePath() string {
	return "/"
}

func DefaultFaviconSize() int {
	return 32
}

func DefaultTouchIconSize() int {
	return 180
}
