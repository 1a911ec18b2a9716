package cmd

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	"github.com/stretchr/testify/assert"

	"github.com/hermes-io/hermes/cmd"
)

func writeConfig(content string) string {
	dir, err := os.MkdirTemp("", "hermes-cmd-test")
	if err != nil {
		panic(err)
	}
	DeferCleanup(func() {
		_ = os.RemoveAll(dir)
	})
	filename := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(filename, []byte(content), 0600); err != nil {
		panic(err)
	}
	return filename
}

var _ = Describe("admin", Ordered, func() {

	Context("validate-config", func() {
		It("accepts a valid configuration", func() {
			filename := writeConfig(`
registers:
  - endpoint: /github
    method: POST
    target:
      url: https://example.com/hook
      method: PUT
    template: '{"text": "{{message}}"}'
`)
			output, err := executeCommand(cmd.NewRootCmd(),
				"admin", "validate-config", "--config", filename)
			assert.Nil(GinkgoT(), err)
			assert.Equal(GinkgoT(), "Configuration is valid (1 webhook registers)\n", output)
		})

		It("rejects a duplicate endpoint", func() {
			filename := writeConfig(`
registers:
  - endpoint: /hook
    method: POST
    target:
      url: https://example.com/a
      method: POST
    template: '{}'
  - endpoint: /hook
    method: POST
    target:
      url: https://example.com/b
      method: POST
    template: '{}'
`)
			_, err := executeCommand(cmd.NewRootCmd(),
				"admin", "validate-config", "--config", filename)
			assert.NotNil(GinkgoT(), err)
			assert.Contains(GinkgoT(), err.Error(), "duplicate endpoint '/hook'")
		})

		It("rejects an unsupported target method", func() {
			filename := writeConfig(`
registers:
  - endpoint: /hook
    method: POST
    target:
      url: https://example.com/a
      method: TRACE
    template: '{}'
`)
			_, err := executeCommand(cmd.NewRootCmd(),
				"admin", "validate-config", "--config", filename)
			assert.NotNil(GinkgoT(), err)
			assert.Contains(GinkgoT(), err.Error(), "invalid target HTTP method 'TRACE'")
		})

		It("rejects a broken template", func() {
			filename := writeConfig(`
registers:
  - endpoint: /hook
    method: POST
    target:
      url: https://example.com/a
      method: POST
    template: '{{#unclosed}}'
`)
			_, err := executeCommand(cmd.NewRootCmd(),
				"admin", "validate-config", "--config", filename)
			assert.NotNil(GinkgoT(), err)
			assert.Contains(GinkgoT(), err.Error(), "template error")
		})
	})

	Context("list-endpoints", func() {
		It("lists registers in a table", func() {
			filename := writeConfig(`
registers:
  - endpoint: /github
    method: POST
    target:
      url: https://example.com/hook
      method: PUT
    template: '{}'
`)
			output, err := executeCommand(cmd.NewRootCmd(),
				"admin", "list-endpoints", "--config", filename)
			assert.Nil(GinkgoT(), err)
			assert.Contains(GinkgoT(), output, "METHOD")
			assert.Contains(GinkgoT(), output, "/github")
			assert.Contains(GinkgoT(), output, "https://example.com/hook")
		})
	})

	Context("test-template", func() {
		It("renders a template against a payload", func() {
			filename := writeConfig(`
registers:
  - endpoint: /github
    method: POST
    target:
      url: https://example.com/hook
      method: POST
    template: '{"text": "push by {{sender}}"}'
`)
			output, err := executeCommand(cmd.NewRootCmd(),
				"admin", "test-template", "--config", filename,
				"--endpoint", "/github",
				"--payload", `{"sender": "octocat"}`)
			assert.Nil(GinkgoT(), err)
			assert.Contains(GinkgoT(), output, `{"text": "push by octocat"}`)
		})
	})
})
