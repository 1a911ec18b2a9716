package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/hermes-io/hermes/deliverer"
	"github.com/hermes-io/hermes/dispatcher"
	"github.com/hermes-io/hermes/pkg/template"
)

func newAdminTestTemplateCmd() *cobra.Command {
	var (
		endpoint string
		payload  string
		send     bool
		timeout  int64
	)

	test := &cobra.Command{
		Use:   "test-template",
		Short: "Render one endpoint's template against a JSON payload",
		Long:  ``,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := initConfig(configurationFile)
			if err != nil {
				return err
			}

			registry, err := dispatcher.NewRegistry(cfg)
			if err != nil {
				return err
			}
			rule, ok := registry.Lookup(endpoint)
			if !ok {
				return fmt.Errorf("endpoint '%s' not found", endpoint)
			}

			var data interface{}
			if err := json.Unmarshal([]byte(payload), &data); err != nil {
				return fmt.Errorf("invalid payload: %s", err)
			}

			rendered, err := rule.Template.Render(template.TemplateData(data))
			if err != nil {
				return fmt.Errorf("template rendering failed: %s", err)
			}

			cmd.Println("Template rendered successfully:")
			cmd.Println(rendered)

			if !gjson.Valid(rendered) {
				return fmt.Errorf("rendered output is not valid JSON")
			}
			cmd.Println("Rendered output is valid JSON")

			if send {
				d := deliverer.NewHTTPDeliverer(deliverer.Options{
					DefaultTimeout: time.Duration(timeout) * time.Second,
				})
				res := d.Deliver(context.Background(), &deliverer.Request{
					URL:     rule.Target.URL,
					Method:  rule.Target.Method,
					Payload: []byte(rendered),
					Headers: rule.Target.Headers,
				})
				if res.Error != nil {
					return fmt.Errorf("delivery failed: %s", res.Error)
				}
				cmd.Printf("Delivered: %s\n", res.String())
				cmd.Println(string(res.ResponseBody))
			}

			return nil
		},
	}

	test.Flags().StringVarP(&endpoint, "endpoint", "e", "", "Endpoint to test")
	test.Flags().StringVarP(&payload, "payload", "p", "", "JSON payload to test with")
	test.Flags().BoolVarP(&send, "send", "", false, "Also deliver the rendered payload to the target")
	test.Flags().Int64VarP(&timeout, "timeout", "", 10, "Delivery timeout in seconds (with --send)")
	_ = test.MarkFlagRequired("endpoint")
	_ = test.MarkFlagRequired("payload")

	return test
}
