// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ubicity Corp.

package tosca

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ubicity-corp/yang2tosca/internal/config"
	"github.com/ubicity-corp/yang2tosca/internal/translate"
	"github.com/ubicity-corp/yang2tosca/internal/yang"
)

// translateSource runs a full translation of one module and returns the
// emitted document and the collected warnings.
func translateSource(t *testing.T, src string, opts ...func(*translate.Options)) (string, string) {
	t.Helper()

	module, err := yang.Parse([]byte(src))
	require.NoError(t, err)

	registry := yang.NewRegistry()
	registry.Add(module)
	registry.Resolve(module)

	var warnings bytes.Buffer
	options := translate.Options{
		TypeMap:  config.Default().TypeMap,
		Warnings: &warnings,
	}
	for _, opt := range opts {
		opt(&options)
	}

	translator := &Translator{}
	output, err := translator.Translate(module, registry, options)
	require.NoError(t, err)

	return string(output), warnings.String()
}

func TestTranslate_Header(t *testing.T) {
	result, _ := translateSource(t, `
module example {
  namespace "urn:example:test";
  prefix ex;

  description "An example module.";
}
`)
	assert.True(t, strings.HasPrefix(result, "tosca_definitions_version: tosca_simple_yaml_1_3\n"))
	assert.Contains(t, result, "# This template was auto-generated by yang2tosca from the YANG module 'example'")
	assert.Contains(t, result, "description: An example module.")
	assert.Contains(t, result, "data_types:")
}

func TestTranslate_Metadata(t *testing.T) {
	result, _ := translateSource(t, `
module example {
  yang-version 1.1;
  namespace "urn:example:test";
  prefix ex;
  organization "Example Corp";
  contact "support@example.org";

  revision 2024-01-15 {
    description "Initial revision.";
  }
  revision 2023-06-01;
}
`)
	assert.Contains(t, result, "metadata:")
	assert.Contains(t, result, "yang-version: 1.1")
	assert.Contains(t, result, "namespace: urn:example:test")
	assert.Contains(t, result, "# TOSCA does not support prefix for local namespaces")
	assert.Contains(t, result, "prefix: ex")
	assert.Contains(t, result, "organization: Example Corp")
	assert.Contains(t, result, "revisions:")
	assert.Contains(t, result, "'2024-01-15':")
	assert.Contains(t, result, "description: Initial revision.")
	// Revisions without a description or reference are skipped.
	assert.NotContains(t, result, "2023-06-01")
}

func TestTranslate_Features(t *testing.T) {
	result, _ := translateSource(t, `
module example {
  prefix ex;

  feature fancy {
    description "Optional behavior.";
    status current;
  }
  feature bare;
}
`)
	assert.Contains(t, result, "features:")
	assert.Contains(t, result, "'fancy':")
	assert.Contains(t, result, "status: current")
	assert.NotContains(t, result, "'bare':")
}

func TestTranslate_Imports(t *testing.T) {
	result, _ := translateSource(t, `
module example {
  prefix ex;

  import ietf-yang-types {
    prefix yang;
  }
  include example-sub;
}
`)
	assert.Contains(t, result, "imports:")
	assert.Contains(t, result, "- file: org.ietf:1.0")
	assert.Contains(t, result, "  namespace_prefix: inet")
	assert.Contains(t, result, "- file: ietf-yang-types.yaml")
	assert.Contains(t, result, "  namespace_prefix: yang")
	assert.Contains(t, result, "- example-sub.yaml")
}

func TestTranslate_BareTypedef(t *testing.T) {
	result, _ := translateSource(t, `
module example {
  prefix ex;

  typedef percent {
    type uint8;
  }
}
`)
	assert.Contains(t, result, "  percent:\n    derived_from: integer\n")
}

func TestTranslate_TypedefExtras(t *testing.T) {
	result, _ := translateSource(t, `
module example {
  prefix ex;

  typedef bandwidth {
    type uint64;
    units "bits/second";
    default 1000;
    description "Link bandwidth.";
  }
}
`)
	assert.Contains(t, result, "bandwidth:")
	assert.Contains(t, result, "description: Link bandwidth.")
	assert.Contains(t, result, "derived_from: integer")
	assert.Contains(t, result, "# TOSCA uses scalar unit types")
	assert.Contains(t, result, "# units: bits/second")
	assert.Contains(t, result, "# TOSCA doesn't support 'default' here")
	assert.Contains(t, result, "# default: 1000")
}

func TestTranslate_LocalPrefixStripped(t *testing.T) {
	result, _ := translateSource(t, `
module example {
  prefix ex;

  typedef base {
    type string;
  }
  typedef alias {
    type ex:base;
  }
}
`)
	assert.Contains(t, result, "derived_from: base")
	assert.NotContains(t, result, "derived_from: ex:base")
}

func TestTranslate_ForeignPrefixKept(t *testing.T) {
	result, _ := translateSource(t, `
module example {
  prefix ex;

  typedef address {
    type inet:ip-address;
  }
}
`)
	assert.Contains(t, result, "derived_from: inet:ip-address")
}

func TestTranslate_SingleUsesElision(t *testing.T) {
	result, _ := translateSource(t, `
module example {
  prefix ex;

  grouping endpoint {
    leaf address {
      type string;
    }
  }

  container connection {
    uses endpoint;
  }
}
`)
	assert.Contains(t, result, "  endpoint:")
	// A container that only forwards to one grouping gets no type of
	// its own.
	assert.NotContains(t, result, "connection:")
}

func TestTranslate_PropertyAttributePartition(t *testing.T) {
	result, _ := translateSource(t, `
module example {
  prefix ex;

  container system {
    leaf hostname {
      type string;
    }
    leaf uptime {
      type string;
      config false;
    }
  }
}
`)
	assert.Contains(t, result, "system:")
	assert.Contains(t, result, "properties:")
	assert.Contains(t, result, "hostname:")
	assert.Contains(t, result, "required: false")
	assert.Contains(t, result, "# TOSCA data types do not support attributes")
	assert.Contains(t, result, "# attributes:")
	assert.Contains(t, result, "uptime:")
	// The attribute comes after the commented attributes marker.
	assert.Less(t, strings.Index(result, "# attributes:"), strings.Index(result, "uptime:"))
}

func TestTranslate_MandatoryLeaf(t *testing.T) {
	result, _ := translateSource(t, `
module example {
  prefix ex;

  container login {
    leaf user {
      type string;
      mandatory true;
      default admin;
    }
  }
}
`)
	assert.Contains(t, result, "required: true")
	assert.Contains(t, result, "default: admin")
}

func TestTranslate_LeafList(t *testing.T) {
	result, _ := translateSource(t, `
module example {
  prefix ex;

  container dns {
    leaf-list server {
      type string;
      max-elements 3;
    }
  }
}
`)
	assert.Contains(t, result, "server:")
	assert.Contains(t, result, "type: list")
	assert.Contains(t, result, "entry_schema:")
	assert.Contains(t, result, "- max_length: 3")
}

func TestTranslate_List(t *testing.T) {
	result, _ := translateSource(t, `
module example {
  prefix ex;

  container interfaces {
    list interface {
      key name;
      ordered-by user;
      leaf name {
        type string;
      }
    }
  }
}
`)
	assert.Contains(t, result, "type: list")
	assert.Contains(t, result, "entry_schema: interface")
	assert.Contains(t, result, "# key: name")
	assert.Contains(t, result, "# ordered-by: user")
	// The list statement also produces its own data type.
	assert.Contains(t, result, "  interface:")
}

func TestTranslate_Choice(t *testing.T) {
	result, _ := translateSource(t, `
module example {
  prefix ex;

  container protocol {
    choice transport {
      case tcp {
        leaf tcp-port {
          type uint16;
        }
      }
      case udp {
        leaf udp-port {
          type uint16;
        }
      }
    }
  }
}
`)
	assert.Contains(t, result, "transport:")
	assert.Contains(t, result, "type: string")
	assert.Contains(t, result, "- valid_values:")
	assert.Contains(t, result, "- tcp")
	assert.Contains(t, result, "- udp")
	assert.Contains(t, result, "# Select one of the following options")
	assert.Contains(t, result, "# The following properties are used in case of 'tcp'")
	assert.Contains(t, result, "tcp-port:")
	assert.Contains(t, result, "# End of options")
}

func TestTranslate_MultipleUses(t *testing.T) {
	result, _ := translateSource(t, `
module example {
  prefix ex;

  grouping base {
    leaf id {
      type string;
    }
  }
  grouping extra {
    leaf note {
      type string;
    }
  }

  container item {
    uses base;
    uses extra;
  }
}
`)
	// Single inheritance: the first 'uses' derives, the rest are copied.
	assert.Contains(t, result, "derived_from: base")
	assert.Contains(t, result, "# properties from 'extra'")
	assert.Contains(t, result, "note:")
}

func TestTranslate_UnresolvedUsesWarns(t *testing.T) {
	result, warnings := translateSource(t, `
module example {
  prefix ex;

  grouping base {
    leaf id {
      type string;
    }
  }

  container item {
    uses base;
    uses missing;
  }
}
`)
	assert.Contains(t, warnings, "/item: uses(missing) not found")
	// Emission still completes.
	assert.Contains(t, result, "derived_from: base")
}

func TestTranslate_ModuleAugment(t *testing.T) {
	result, _ := translateSource(t, `
module example {
  prefix ex;

  container top {
    container inner {
      leaf x {
        type string;
      }
    }
  }

  augment "/ex:top/ex:inner" {
    leaf extra {
      type string;
    }
  }
}
`)
	// The augment re-opens the target type, deriving from it.
	assert.Contains(t, result, "derived_from: inner")
	assert.Contains(t, result, "extra:")
}

func TestTranslate_CamelCase(t *testing.T) {
	result, _ := translateSource(t, `
module example {
  prefix ex;

  container net {
    leaf ip-address {
      type string;
    }
  }
}
`, func(o *translate.Options) { o.CamelCase = true })

	assert.Contains(t, result, "ipAddress:")
	// Type names are never transformed.
	assert.Contains(t, result, "net:")
}

func TestTranslate_UnhandledStatementWarns(t *testing.T) {
	_, warnings := translateSource(t, `
module example {
  prefix ex;

  rpc get-status;

  container c {
    leaf x {
      type string;
      status deprecated;
    }
  }
}
`)
	assert.Contains(t, warnings, "/: rpc(get-status) not handled")
	assert.Contains(t, warnings, "/c/x: status(deprecated) not handled")
}

func TestTranslate_MustAndWhenComments(t *testing.T) {
	result, _ := translateSource(t, `
module example {
  prefix ex;

  container port {
    leaf number {
      type uint16;
      when "../enabled = 'true'";
      must "number != 0" {
        error-message "port zero is reserved";
      }
    }
  }
}
`)
	assert.Contains(t, result, "# when: ../enabled = 'true'")
	assert.Contains(t, result, "# must:")
	assert.Contains(t, result, "#   number != 0")
	assert.Contains(t, result, "#   error-message: port zero is reserved")
}

func TestTranslate_PresenceContainer(t *testing.T) {
	result, _ := translateSource(t, `
module example {
  prefix ex;

  container outer {
    container tuning {
      presence "tuning enabled";
      leaf level {
        type uint8;
      }
    }
  }
}
`)
	assert.Contains(t, result, "type: tuning")
	assert.Contains(t, result, "# presence: tuning enabled")
}

func TestTranslatorRegistration(t *testing.T) {
	translator, err := translate.Get("tosca")
	require.NoError(t, err)
	assert.Equal(t, "tosca", translator.Name())
	assert.Equal(t, ".yaml", translator.FileExtension())
	assert.Contains(t, translate.Available(), "tosca")
}
