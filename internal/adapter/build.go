package adapter

import (
	"fmt"
)

// The Build* functions construct raw NETCONF RPC bodies as strings, in the
// same style as netconf/ops/session.go's createGetXpathRequest: a
// fully-formed XML element, passed to Adapter.SendRecv and wrapped verbatim
// into the <rpc> envelope via common.GetUnion's string case. This is used
// (rather than ops's typed request structs) because the broker's request
// fields arrive as opaque strings from JSON, not Go-typed values, and
// several of these RPCs (with-defaults, url-addressed datastores,
// kill-session by id, validate) have no typed builder in ops at all.

const withDefaultsReportAll = `<with-defaults xmlns="urn:ietf:params:xml:ns:yang:ietf-netconf-with-defaults">report-all</with-defaults>`

// BuildGet constructs a <get> RPC, optionally with a subtree filter, forcing
// with-defaults=report-all per §4.C.
func BuildGet(filter string) string {
	if filter == "" {
		return fmt.Sprintf(`<get>%s</get>`, withDefaultsReportAll)
	}
	return fmt.Sprintf(`<get><filter type="subtree">%s</filter>%s</get>`, filter, withDefaultsReportAll)
}

// BuildGetConfig constructs a <get-config> RPC against source, optionally
// with a subtree filter, forcing with-defaults=report-all.
func BuildGetConfig(source, filter string) string {
	src := fmt.Sprintf("<%s/>", source)
	if filter == "" {
		return fmt.Sprintf(`<get-config><source>%s</source>%s</get-config>`, src, withDefaultsReportAll)
	}
	return fmt.Sprintf(`<get-config><source>%s</source><filter type="subtree">%s</filter>%s</get-config>`,
		src, filter, withDefaultsReportAll)
}

// BuildGetSchema constructs a <get-schema> RPC per ietf-netconf-monitoring.
func BuildGetSchema(identifier, version, format string) string {
	body := fmt.Sprintf("<identifier>%s</identifier>", identifier)
	if version != "" {
		body += fmt.Sprintf("<version>%s</version>", version)
	}
	if format != "" {
		body += fmt.Sprintf("<format>%s</format>", format)
	}
	return fmt.Sprintf(`<get-schema xmlns="urn:ietf:params:xml:ns:yang:ietf-netconf-monitoring">%s</get-schema>`, body)
}

// BuildEditConfig constructs an <edit-config> RPC. testOption is always
// fixed to test-then-set per §4.E; defaultOperation/errorOption are omitted
// when empty.
func BuildEditConfig(target, config, defaultOperation, errorOption string) string {
	var opts string
	if defaultOperation != "" {
		opts += fmt.Sprintf("<default-operation>%s</default-operation>", defaultOperation)
	}
	opts += `<test-option>test-then-set</test-option>`
	if errorOption != "" {
		opts += fmt.Sprintf("<error-option>%s</error-option>", errorOption)
	}
	return fmt.Sprintf(`<edit-config><target><%s/></target>%s<config>%s</config></edit-config>`,
		target, opts, config)
}

// BuildCopyConfig constructs a <copy-config> RPC. sourceURL/targetURL select
// a URL-addressed source/target per the spec's "Datastore-URL copy"
// resolution, but only when the matching source/target is "url" and the URL
// is non-empty; otherwise source/target name a named datastore. inlineConfig
// (if non-empty) supplies the source directly, in place of source.
func BuildCopyConfig(source, target, inlineConfig, sourceURL, targetURL string) string {
	src := datastoreOrURL(source, sourceURL)
	if inlineConfig != "" {
		src = fmt.Sprintf("<config>%s</config>", inlineConfig)
	}
	dst := datastoreOrURL(target, targetURL)
	return fmt.Sprintf(`<copy-config><target>%s</target><source>%s</source></copy-config>`, dst, src)
}

// BuildDeleteConfig constructs a <delete-config> RPC.
func BuildDeleteConfig(target, url string) string {
	return fmt.Sprintf(`<delete-config><target>%s</target></delete-config>`, datastoreOrURL(target, url))
}

// BuildLock constructs a <lock> RPC.
func BuildLock(target string) string {
	return fmt.Sprintf(`<lock><target><%s/></target></lock>`, target)
}

// BuildUnlock constructs an <unlock> RPC.
func BuildUnlock(target string) string {
	return fmt.Sprintf(`<unlock><target><%s/></target></unlock>`, target)
}

// BuildKillSession constructs a <kill-session> RPC for the given session id.
func BuildKillSession(sessionID string) string {
	return fmt.Sprintf(`<kill-session><session-id>%s</session-id></kill-session>`, sessionID)
}

// BuildValidate constructs a <validate> RPC against target (name or URL).
func BuildValidate(target, url string) string {
	return fmt.Sprintf(`<validate><source>%s</source></validate>`, datastoreOrURL(target, url))
}

// BuildSubscribe constructs a <create-subscription> RPC with an absolute
// time window, per §4.H.
func BuildSubscribe(startTime, stopTime string) string {
	return fmt.Sprintf(
		`<create-subscription xmlns="urn:ietf:params:xml:ns:netconf:notification:1.0">`+
			`<startTime>%s</startTime><stopTime>%s</stopTime></create-subscription>`,
		startTime, stopTime)
}

// BuildGeneric wraps an already-formed RPC body verbatim (MSG_GENERIC).
func BuildGeneric(content string) string {
	return content
}

func datastoreOrURL(name, url string) string {
	if name == "url" && url != "" {
		return fmt.Sprintf("<url>%s</url>", url)
	}
	return fmt.Sprintf("<%s/>", name)
}
