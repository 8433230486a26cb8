package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildGetForcesWithDefaults(t *testing.T) {
	assert.Contains(t, BuildGet(""), "report-all")
	assert.Contains(t, BuildGet("<x/>"), "<filter type=\"subtree\"><x/></filter>")
}

func TestBuildGetConfigIncludesSource(t *testing.T) {
	xml := BuildGetConfig("running", "")
	assert.Contains(t, xml, "<source><running/></source>")
	assert.Contains(t, xml, "report-all")
}

func TestBuildEditConfigFixesTestOption(t *testing.T) {
	xml := BuildEditConfig("running", "<x/>", "merge", "stop-on-error")
	assert.Contains(t, xml, "<test-option>test-then-set</test-option>")
	assert.Contains(t, xml, "<default-operation>merge</default-operation>")
	assert.Contains(t, xml, "<error-option>stop-on-error</error-option>")
}

func TestBuildCopyConfigWithURLTarget(t *testing.T) {
	xml := BuildCopyConfig("running", "url", "", "", "ftp://host/cfg")
	assert.Contains(t, xml, "<target><url>ftp://host/cfg</url></target>")
	assert.Contains(t, xml, "<source><running/></source>")
}

func TestBuildCopyConfigWithInlineConfig(t *testing.T) {
	xml := BuildCopyConfig("", "running", "<a/>", "", "")
	assert.Contains(t, xml, "<source><config><a/></config></source>")
}

func TestBuildKillSession(t *testing.T) {
	assert.Equal(t, `<kill-session><session-id>42</session-id></kill-session>`, BuildKillSession("42"))
}
