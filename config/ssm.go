package config

import (
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rs/zerolog/log"
)

// ParametersByPathAPI is the subset of the SSM client used to load secrets.
type ParametersByPathAPI interface {
	GetParametersByPath(ctx context.Context, params *ssm.GetParametersByPathInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error)
}

// LoadSSMParameters copies every parameter under prefix into config, keyed by the
// parameter basename (/jrm/prod/TWILIO_AUTH_TOKEN -> TWILIO_AUTH_TOKEN). Keys already
// present with a non-empty value are left alone so the local environment always wins.
func LoadSSMParameters(ctx context.Context, client ParametersByPathAPI, prefix string, config map[string]string) (int, error) {
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(prefix),
		Recursive:      aws.Bool(true),
		WithDecryption: aws.Bool(true),
	})

	loaded := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return loaded, fmt.Errorf("loading SSM parameters from %s: %w", prefix, err)
		}

		for _, param := range page.Parameters {
			key := path.Base(aws.ToString(param.Name))
			if key == "" || key == "/" || key == "." {
				continue
			}
			if existing, ok := config[key]; ok && existing != "" {
				log.Debug().Str("key", key).Msg("Keeping environment value over SSM parameter")
				continue
			}
			config[key] = aws.ToString(param.Value)
			loaded++
		}
	}

	return loaded, nil
}
