package command

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		raw  string
		want []string
	}{
		"single command": {
			raw:  "gcloud compute instances list",
			want: []string{"gcloud compute instances list"},
		},
		"multiple commands in order": {
			raw: "gcloud compute instances create [INSTANCE_NAME] --zone=[ZONE]\ngcloud compute disks create [DISK_NAME] --size=200GB",
			want: []string{
				"gcloud compute instances create [INSTANCE_NAME] --zone=[ZONE]",
				"gcloud compute disks create [DISK_NAME] --size=200GB",
			},
		},
		"blank lines and whitespace discarded": {
			raw:  "\n  gcloud pubsub topics create [TOPIC_NAME]  \n\n\t\n",
			want: []string{"gcloud pubsub topics create [TOPIC_NAME]"},
		},
		"all-blank input yields no commands": {
			raw:  "   \n\t\n",
			want: nil,
		},
		"empty input yields no commands": {
			raw:  "",
			want: nil,
		},
		"sentinel alone": {
			raw:  Sentinel,
			want: []string{Sentinel},
		},
		"sentinel takes precedence over other content": {
			raw:  "gcloud compute instances list\n" + Sentinel + "\ngcloud projects list",
			want: []string{Sentinel},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := Split(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSplit_Idempotent(t *testing.T) {
	t.Parallel()

	raw := "  gcloud compute instances list \n\ngcloud projects list\n gcloud pubsub topics list"
	first := Split(raw)
	second := Split(strings.Join(first, "\n"))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("split not idempotent: first %v, second %v", first, second)
	}
}
