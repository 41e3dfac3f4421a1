// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package appconfig

// Kind tells how a server setting's default is substituted.
type Kind int

const (
	// KindBool settings always resolve to a bool: any non-bool runtime
	// value (nil, "", 0, "false", ...) is replaced by the default.
	KindBool Kind = iota
	// KindString settings fall back to the default only when missing or nil.
	// An empty string is a valid value.
	KindString
	// KindNumber settings fall back to the default only when missing or nil.
	KindNumber
	// KindNullable settings default to nil and fall back only when missing.
	KindNullable
)

// Setting is one entry of the server configuration defaults schema.
type Setting struct {
	Name    string
	Kind    Kind
	Default any
}

// BoolSetting declares a boolean setting.
func BoolSetting(name string, def bool) Setting {
	return Setting{Name: name, Kind: KindBool, Default: def}
}

// StringSetting declares a string setting.
func StringSetting(name, def string) Setting {
	return Setting{Name: name, Kind: KindString, Default: def}
}

// NumberSetting declares a numeric setting. Numbers are float64, matching
// encoding/json.
func NumberSetting(name string, def float64) Setting {
	return Setting{Name: name, Kind: KindNumber, Default: def}
}

// NullableSetting declares a setting whose default is nil.
func NullableSetting(name string) Setting {
	return Setting{Name: name, Kind: KindNullable}
}

// apply substitutes the default into m according to the setting's kind.
func (s Setting) apply(m map[string]any) {
	v, ok := m[s.Name]
	if s.Kind == KindBool {
		if _, isBool := v.(bool); !isBool {
			m[s.Name] = s.Default
		}
		return
	}
	if !ok || v == nil {
		m[s.Name] = s.Default
	}
}

// Server setting names referenced by the resolver and its consumers.
const (
	SettingFrontendConfigOverride  = "frontendConfigOverride"
	SettingSessionServiceURL       = "session_service_url"
	SettingUserEmailAddress        = "user_email_address"
	SettingGenomeNexusURL          = "genomenexus_url"
	SettingOncoKBPublicAPIURL      = "oncokb_public_api_url"
	SettingG2SURL                  = "g2s_url"
	SettingPriorityStudies         = "priority_studies"
	SettingSkinExampleStudyQueries = "skin_example_study_queries"
	SettingQuerySetsOfGenes        = "query_sets_of_genes"
	SettingDisabledTabs            = "disabled_tabs"
)

// AnonymousUser is the user_email_address reported for unauthenticated
// sessions.
const AnonymousUser = "anonymousUser"

const defaultExampleStudyQueries = "tcga\n" +
	"tcga -provisional\n" +
	"tcga -moratorium\n" +
	"tcga OR icgc\n" +
	"-\"cell line\"\n" +
	"prostate mskcc\n" +
	"esophageal OR stomach\n" +
	"serous\n" +
	"breast"

// ServerConfigDefaults is the built-in defaults schema of the portal.
var ServerConfigDefaults = []Setting{
	StringSetting("app_name", "public-portal"),
	StringSetting("authenticationMethod", ""),
	NumberSetting("api_cache_limit", 450),

	StringSetting("skin_title", "cBioPortal for Cancer Genomics"),
	StringSetting("skin_blurb", ""),
	StringSetting("skin_email_contact", "cbioportal at googlegroups dot com"),
	StringSetting("skin_documentation_baseurl", "github.com/cBioPortal/cbioportal/blob/master/docs/"),
	StringSetting(SettingSkinExampleStudyQueries, defaultExampleStudyQueries),
	StringSetting("skin_right_nav_whats_new_blurb", ""),
	BoolSetting("skin_show_news_tab", true),
	BoolSetting("skin_show_tutorials_tab", true),
	BoolSetting("skin_show_about_tab", true),
	BoolSetting("skin_show_faqs_tab", true),
	BoolSetting("skin_show_web_api_tab", true),
	BoolSetting("skin_show_r_matlab_tab", true),
	BoolSetting("skin_show_tools_tab", true),
	BoolSetting("skin_show_data_tab", true),
	BoolSetting("skin_show_gsva", false),
	BoolSetting("skin_right_nav_show_data_sets", true),
	BoolSetting("skin_right_nav_show_examples", true),
	BoolSetting("skin_right_nav_show_testimonials", true),

	BoolSetting("show_oncokb", true),
	BoolSetting("show_civic", false),
	BoolSetting("show_hotspot", true),
	BoolSetting("show_genomenexus", true),
	BoolSetting("show_mutation_mapper_tool_grch38", true),
	BoolSetting("oncoprint_oncokb_default", true),
	BoolSetting("oncoprint_hotspots_default", true),
	BoolSetting("oncoprint_hide_vus_default", false),
	StringSetting("oncoprint_custom_driver_annotation_binary_menu_label", ""),
	NumberSetting("studyview_max_samples_selected", 0),

	StringSetting(SettingPriorityStudies, ""),
	NullableSetting(SettingQuerySetsOfGenes),
	StringSetting(SettingDisabledTabs, ""),

	StringSetting(SettingSessionServiceURL, ""),
	StringSetting(SettingUserEmailAddress, ""),
	StringSetting(SettingGenomeNexusURL, ""),
	StringSetting(SettingOncoKBPublicAPIURL, ""),
	StringSetting(SettingG2SURL, "https://g2s.genomenexus.org"),
	StringSetting(SettingFrontendConfigOverride, ""),
}
