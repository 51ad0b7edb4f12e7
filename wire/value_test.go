package wire

import (
	"errors"
	"math"
	"testing"

	"github.com/beevik/etree"
	"github.com/danderson/xmlrpc/xmlrpctest"
)

func TestFormatDouble(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{13.37, "13.37"},
		{133.7, "133.7"},
		{0, "0"},
		{1, "1"},
		{-2.5, "-2.5"},
		{0.0001, "0.0001"},
		{0.00001, "1.0E-5"},
		{1.5e-7, "1.5E-7"},
		{99999999999999, "99999999999999"},
		{1e14, "1.0E+14"},
		{123456789012345, "1.23456789012345E+14"},
		{1e15, "1.0E+15"},
		{1e20, "1.0E+20"},
		{-1.25e20, "-1.25E+20"},
		{math.MaxFloat64, "1.7976931348623157E+308"},
		{5e-324, "5.0E-324"},
	}
	for _, tc := range tests {
		if got := FormatDouble(tc.in); got != tc.want {
			t.Errorf("FormatDouble(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewValue(t *testing.T) {
	if _, err := NewValue(); !isStructural(err) {
		t.Errorf("NewValue() got err %v, want StructuralError", err)
	}
	if _, err := NewValue(String("a"), Struct{}); !isStructural(err) {
		t.Errorf("NewValue(scalar, struct) got err %v, want StructuralError", err)
	}
	if _, err := NewValue(String("a"), Int(1), Double(2)); err != nil {
		t.Errorf("NewValue(scalars...) got err: %v", err)
	}
	if _, err := NewValue(Struct{}, Struct{}); err != nil {
		t.Errorf("NewValue(structs...) got err: %v", err)
	}
}

func isStructural(err error) bool {
	var se StructuralError
	return errors.As(err, &se)
}

func TestElement(t *testing.T) {
	nested := Struct{
		{"foo", Value{String("bar")}},
		{"bar", Value{String("baz")}},
		{"baz", Value{Struct{
			{"zzz", Value{String("xxx")}},
			{"ccc", Value{Struct{
				{"vvv", Value{Struct{
					{"bbb", Value{String("nnn")}},
				}}},
			}}},
		}}},
	}

	tests := []struct {
		name string
		in   interface{ Element() *etree.Element }
		want string
	}{
		{"string", Value{String("f00")}, "<value><string>f00</string></value>"},
		{"empty string", Value{String("")}, "<value><string/></value>"},
		{"escaped string", Value{String("a<b&c")}, "<value><string>a&lt;b&amp;c</string></value>"},
		{"int", Value{Int(1337)}, "<value><int>1337</int></value>"},
		{"double", Value{Double(13.37)}, "<value><double>13.37</double></value>"},
		{"exponent", Value{Double(1e20)}, "<value><double>1.0E+20</double></value>"},
		{"multi", Value{String("bar"), Int(2)}, "<value><string>bar</string><int>2</int></value>"},
		{"member", Member{"k", Value{Int(1)}}, "<member><name>k</name><value><int>1</int></value></member>"},
		{"empty struct", Value{Struct{}}, "<value><struct/></value>"},
		{"duplicate members", Struct{{"a", Value{Int(1)}}, {"a", Value{Int(2)}}},
			"<struct><member><name>a</name><value><int>1</int></value></member><member><name>a</name><value><int>2</int></value></member></struct>"},
		{"nested struct", Value{nested}, xmlrpctest.Compact(`
			<value>
				<struct>
					<member>
						<name>foo</name>
						<value><string>bar</string></value>
					</member>
					<member>
						<name>bar</name>
						<value><string>baz</string></value>
					</member>
					<member>
						<name>baz</name>
						<value>
							<struct>
								<member>
									<name>zzz</name>
									<value><string>xxx</string></value>
								</member>
								<member>
									<name>ccc</name>
									<value>
										<struct>
											<member>
												<name>vvv</name>
												<value>
													<struct>
														<member>
															<name>bbb</name>
															<value><string>nnn</string></value>
														</member>
													</struct>
												</value>
											</member>
										</struct>
									</value>
								</member>
							</struct>
						</value>
					</member>
				</struct>
			</value>`)},
		{"empty param", Param{}, "<param/>"},
		{"params", Params{{Value{String("bar")}}, {Value{String("baz")}}},
			"<params><param><value><string>bar</string></value></param><param><value><string>baz</string></value></param></params>"},
		{"method call", MethodCall{"MyMethod", Params{{Value{Int(1)}}}},
			"<methodCall><methodName>MyMethod</methodName><params><param><value><int>1</int></value></param></params></methodCall>"},
		{"method call no params", MethodCall{"ping", nil},
			"<methodCall><methodName>ping</methodName><params/></methodCall>"},
		{"method response", MethodResponse{{{Value{String("ok")}}}},
			"<methodResponse><params><param><value><string>ok</string></value></param></params></methodResponse>"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := xmlrpctest.String(t, tc.in.Element())
			if got != tc.want {
				t.Errorf("wrong element:\n  got: %s\n want: %s", got, tc.want)
			}
		})
	}
}
