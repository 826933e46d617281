package cmd

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/spf13/cobra"

	"github.com/saulo-duarte/trivia-lambda/internal/container"
)

var lambdaCmd = &cobra.Command{
	Use:   "lambda",
	Short: "Serve the API as an AWS Lambda handler behind API Gateway",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := container.New(cmd.Context())
		if err != nil {
			return err
		}

		adapter := httpadapter.New(c.Handler())
		lambda.Start(adapter.ProxyWithContext)
		return nil
	},
}
