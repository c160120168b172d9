// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dict

import "sync"

var (
	fix44Dict *Dictionary
	fix44Once sync.Once
)

// FIX44 returns the built-in dictionary for FIX 4.4. It covers the standard
// Length and NumInGroup tags, which are the datatypes that alter decoder
// behavior, plus the common header/body tags with their plain datatypes.
// The returned Dictionary is shared and immutable
func FIX44() *Dictionary {
	fix44Once.Do(func() {
		fix44Dict = NewDictionary(fix44Types)
	})
	return fix44Dict
}

var fix44Types = map[uint32]Datatype{
	// Standard header/trailer
	8:  DatatypeString,       // BeginString
	9:  DatatypeLength,       // BodyLength
	10: DatatypeString,       // CheckSum
	34: DatatypeSeqNum,       // MsgSeqNum
	35: DatatypeString,       // MsgType
	43: DatatypeBoolean,      // PossDupFlag
	49: DatatypeString,       // SenderCompID
	50: DatatypeString,       // SenderSubID
	52: DatatypeUTCTimestamp, // SendingTime
	56: DatatypeString,       // TargetCompID
	57: DatatypeString,       // TargetSubID

	// Common body fields
	1:   DatatypeString,       // Account
	11:  DatatypeString,       // ClOrdID
	15:  DatatypeString,       // Currency
	21:  DatatypeChar,         // HandlInst
	38:  DatatypeFloat,        // OrderQty
	40:  DatatypeChar,         // OrdType
	44:  DatatypeFloat,        // Price
	54:  DatatypeChar,         // Side
	55:  DatatypeString,       // Symbol
	59:  DatatypeChar,         // TimeInForce
	60:  DatatypeUTCTimestamp, // TransactTime
	262: DatatypeString,       // MDReqID
	269: DatatypeChar,         // MDEntryType
	270: DatatypeFloat,        // MDEntryPx
	271: DatatypeFloat,        // MDEntrySize
	278: DatatypeString,       // MDEntryID
	279: DatatypeChar,         // MDUpdateAction
	346: DatatypeInt,          // NumberOfOrders

	// Length fields (fix the byte length of the following data field)
	90:  DatatypeLength, // SecureDataLen
	93:  DatatypeLength, // SignatureLength
	95:  DatatypeLength, // RawDataLength
	212: DatatypeLength, // XmlDataLen
	348: DatatypeLength, // EncodedIssuerLen
	350: DatatypeLength, // EncodedSecurityDescLen
	352: DatatypeLength, // EncodedListExecInstLen
	354: DatatypeLength, // EncodedTextLen
	356: DatatypeLength, // EncodedSubjectLen
	358: DatatypeLength, // EncodedHeadlineLen
	360: DatatypeLength, // EncodedAllocTextLen
	362: DatatypeLength, // EncodedUnderlyingIssuerLen
	364: DatatypeLength, // EncodedUnderlyingSecurityDescLen

	// Raw data fields paired with the Length fields above
	89:  DatatypeData, // Signature
	91:  DatatypeData, // SecureData
	96:  DatatypeData, // RawData
	213: DatatypeData, // XmlData
	349: DatatypeData, // EncodedIssuer
	351: DatatypeData, // EncodedSecurityDesc
	353: DatatypeData, // EncodedListExecInst
	355: DatatypeData, // EncodedText
	357: DatatypeData, // EncodedSubject
	359: DatatypeData, // EncodedHeadline
	361: DatatypeData, // EncodedAllocText
	363: DatatypeData, // EncodedUnderlyingIssuer
	365: DatatypeData, // EncodedUnderlyingSecurityDesc

	// Repeating group entry counts
	73:  DatatypeNumInGroup, // NoOrders
	78:  DatatypeNumInGroup, // NoAllocs
	124: DatatypeNumInGroup, // NoExecs
	136: DatatypeNumInGroup, // NoMiscFees
	146: DatatypeNumInGroup, // NoRelatedSym
	215: DatatypeNumInGroup, // NoRoutingIDs
	232: DatatypeNumInGroup, // NoStipulations
	267: DatatypeNumInGroup, // NoMDEntryTypes
	268: DatatypeNumInGroup, // NoMDEntries
	295: DatatypeNumInGroup, // NoQuoteEntries
	296: DatatypeNumInGroup, // NoQuoteSets
	382: DatatypeNumInGroup, // NoContraBrokers
	386: DatatypeNumInGroup, // NoTradingSessions
	453: DatatypeNumInGroup, // NoPartyIDs
	454: DatatypeNumInGroup, // NoSecurityAltID
	539: DatatypeNumInGroup, // NoNestedPartyIDs
	552: DatatypeNumInGroup, // NoSides
	555: DatatypeNumInGroup, // NoLegs
	604: DatatypeNumInGroup, // NoLegSecurityAltID
	711: DatatypeNumInGroup, // NoUnderlyings
	802: DatatypeNumInGroup, // NoPartySubIDs
	804: DatatypeNumInGroup, // NoNestedPartySubIDs
}
